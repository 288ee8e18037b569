package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	// Cost is the bcrypt cost, bcrypt.DefaultCost when zero
	Cost int
}

type record struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Pin      string `json:"pin"`
}

func New(properties core.PropertyStore, logger *slog.Logger, cfg Config) core.CredentialStore {
	if cfg.Cost == 0 {
		cfg.Cost = bcrypt.DefaultCost
	}

	return &credentialStore{
		properties: properties,
		logger:     logger.With("store", "credential"),
		cfg:        cfg,
	}
}

type credentialStore struct {
	properties core.PropertyStore
	logger     *slog.Logger
	cfg        Config
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *credentialStore) Save(ctx context.Context, email, password, pin string) error {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.Cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(pin), s.cfg.Cost)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}

	return s.properties.Set(ctx, store.KeyCredentials, record{
		Email:    normalizeEmail(email),
		Password: string(passwordHash),
		Pin:      string(pinHash),
	})
}

// load returns nil when no usable record is stored.
func (s *credentialStore) load(ctx context.Context) (*record, error) {
	var r record
	if err := s.properties.Get(ctx, store.KeyCredentials, &r); err != nil {
		if !store.IsErrCorrupted(err) {
			return nil, err
		}

		s.logger.Error("properties.Get", "key", store.KeyCredentials, "err", err)
		return nil, nil
	}

	if r.Email == "" {
		return nil, nil
	}

	return &r, nil
}

func compare(hash, plain string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

func (s *credentialStore) ValidateCredentials(ctx context.Context, email, password string) (bool, error) {
	r, err := s.load(ctx)
	if err != nil || r == nil {
		return false, err
	}

	if r.Email != normalizeEmail(email) {
		return false, nil
	}

	return compare(r.Password, password)
}

func (s *credentialStore) ValidatePin(ctx context.Context, pin string) (bool, error) {
	r, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	if r == nil {
		return pin == core.DemoPin, nil
	}

	return compare(r.Pin, pin)
}

func (s *credentialStore) LoadLockout(ctx context.Context) (*core.Lockout, error) {
	var lockout core.Lockout
	if err := s.properties.Get(ctx, store.KeyLockout, &lockout); err != nil {
		if !store.IsErrCorrupted(err) {
			return nil, err
		}

		s.logger.Error("properties.Get", "key", store.KeyLockout, "err", err)
		return &core.Lockout{}, nil
	}

	return &lockout, nil
}

func (s *credentialStore) SaveLockout(ctx context.Context, lockout *core.Lockout) error {
	if lockout.Attempts == 0 && lockout.LockedUntil.IsZero() {
		return s.properties.Remove(ctx, store.KeyLockout)
	}

	return s.properties.Set(ctx, store.KeyLockout, lockout)
}
