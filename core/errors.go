package core

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInsufficientFunds  = errors.New("insufficient balance")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConnected       = errors.New("not connected")

	ErrGateLocked    = errors.New("authorization locked")
	ErrGateClosed    = errors.New("no pending action")
	ErrPinIncomplete = errors.New("pin must be 6 digits")
	ErrIncorrectPin  = errors.New("incorrect pin")
	ErrAccountLocked = errors.New("account locked")

	ErrWalletNotSupported = errors.New("wallet not supported")
)
