package core

import (
	"context"
	"time"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

//go:generate mockgen -source=notifier.go -destination=mocks/notifier.go -package=mocks

type Notifier interface {
	Show(ctx context.Context, message string, severity Severity)
}
