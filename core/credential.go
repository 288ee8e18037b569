package core

import (
	"context"
	"time"
)

// DemoPin is accepted when no credentials have been saved yet.
const DemoPin = "123456"

type Lockout struct {
	Attempts    int       `json:"attempts"`
	LockedUntil time.Time `json:"locked_until,omitempty"`
}

//go:generate mockgen -source=credential.go -destination=mocks/credential.go -package=mocks

type CredentialStore interface {
	Save(ctx context.Context, email, password, pin string) error
	ValidateCredentials(ctx context.Context, email, password string) (bool, error)
	ValidatePin(ctx context.Context, pin string) (bool, error)
	LoadLockout(ctx context.Context) (*Lockout, error)
	SaveLockout(ctx context.Context, lockout *Lockout) error
}
