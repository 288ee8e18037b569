package store

import (
	"database/sql"
	"errors"
)

// ErrCorrupted marks a stored record that could not be decoded.
var ErrCorrupted = errors.New("corrupted record")

// property keys
const (
	KeyUser        = "algopayx_user"
	KeyBalance     = "algopayx_balance"
	KeyCredentials = "algopayx_credentials"
	KeyLockout     = "algopayx_lockout"
	KeyWallet      = "algorand_wallet"
	KeyAccount     = "algorand_account"
)

func IsErrNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// IsErrCorrupted reports whether err comes from decoding a malformed record.
func IsErrCorrupted(err error) bool {
	return errors.Is(err, ErrCorrupted)
}
