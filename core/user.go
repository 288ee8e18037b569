package core

import "context"

type User struct {
	Connected     bool       `json:"connected"`
	Email         string     `json:"email,omitempty"`
	WalletAddress string     `json:"wallet_address,omitempty"`
	WalletKind    WalletKind `json:"wallet_kind,omitempty"`
	Premium       bool       `json:"premium"`
	PremiumPlan   string     `json:"premium_plan,omitempty"`
	HasPassword   bool       `json:"has_password"`
	AccountLocked bool       `json:"account_locked"`
}

//go:generate mockgen -source=user.go -destination=mocks/user.go -package=mocks

type UserStore interface {
	// Find returns the disconnected default user when nothing is stored
	Find(ctx context.Context) (*User, error)
	Save(ctx context.Context, user *User) error
	Reset(ctx context.Context) error
}
