package credential

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/store"
	"github.com/pandodao/algopayx/store/db"
	"github.com/pandodao/algopayx/store/property"
	"golang.org/x/crypto/bcrypt"
)

func newStore(t *testing.T) (core.CredentialStore, core.PropertyStore) {
	t.Helper()

	conn, err := db.Open(db.SQLite, filepath.Join(t.TempDir(), "credential.db"))
	if err != nil {
		t.Fatalf("db.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	properties := property.New(conn, db.SQLite)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(properties, logger, Config{Cost: bcrypt.MinCost}), properties
}

func TestValidatePinFallback(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	tests := []struct {
		name string
		pin  string
		want bool
	}{
		{name: "demo pin", pin: core.DemoPin, want: true},
		{name: "other pin", pin: "654321", want: false},
		{name: "empty", pin: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ValidatePin(ctx, tt.pin)
			if err != nil {
				t.Fatalf("ValidatePin() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("ValidatePin(%q) = %v, want %v", tt.pin, got, tt.want)
			}
		})
	}
}

func TestSaveAndValidate(t *testing.T) {
	s, properties := newStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, "Alice@Example.com", "correct horse", "246810"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	var raw map[string]string
	if err := properties.Get(ctx, store.KeyCredentials, &raw); err != nil {
		t.Fatalf("properties.Get() error = %v", err)
	}

	if raw["password"] == "correct horse" || raw["pin"] == "246810" {
		t.Fatalf("credentials stored in plain text: %v", raw)
	}

	credentials := []struct {
		name     string
		email    string
		password string
		want     bool
	}{
		{name: "match", email: "alice@example.com", password: "correct horse", want: true},
		{name: "email case and spaces", email: " ALICE@example.com ", password: "correct horse", want: true},
		{name: "wrong password", email: "alice@example.com", password: "battery staple", want: false},
		{name: "wrong email", email: "bob@example.com", password: "correct horse", want: false},
	}

	for _, tt := range credentials {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ValidateCredentials(ctx, tt.email, tt.password)
			if err != nil {
				t.Fatalf("ValidateCredentials() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("ValidateCredentials() = %v, want %v", got, tt.want)
			}
		})
	}

	if ok, _ := s.ValidatePin(ctx, "246810"); !ok {
		t.Error("ValidatePin() with saved pin = false, want true")
	}

	if ok, _ := s.ValidatePin(ctx, core.DemoPin); ok {
		t.Error("ValidatePin() with demo pin after save = true, want false")
	}
}

func TestCorruptedRecord(t *testing.T) {
	s, properties := newStore(t)
	ctx := context.Background()

	if err := properties.Set(ctx, store.KeyCredentials, "not an object"); err != nil {
		t.Fatalf("properties.Set() error = %v", err)
	}

	ok, err := s.ValidatePin(ctx, core.DemoPin)
	if err != nil {
		t.Fatalf("ValidatePin() error = %v", err)
	}

	if !ok {
		t.Error("ValidatePin() on corrupted record should fall back to the demo pin")
	}
}

func TestLockout(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	lockout, err := s.LoadLockout(ctx)
	if err != nil {
		t.Fatalf("LoadLockout() error = %v", err)
	}

	if lockout.Attempts != 0 || !lockout.LockedUntil.IsZero() {
		t.Fatalf("LoadLockout() = %+v, want empty", lockout)
	}

	until := time.Date(2030, 1, 1, 0, 5, 0, 0, time.UTC)
	if err := s.SaveLockout(ctx, &core.Lockout{Attempts: 5, LockedUntil: until}); err != nil {
		t.Fatalf("SaveLockout() error = %v", err)
	}

	lockout, _ = s.LoadLockout(ctx)
	if lockout.Attempts != 5 || !lockout.LockedUntil.Equal(until) {
		t.Errorf("LoadLockout() = %+v, want 5 attempts until %s", lockout, until)
	}

	if err := s.SaveLockout(ctx, &core.Lockout{}); err != nil {
		t.Fatalf("SaveLockout() reset error = %v", err)
	}

	lockout, _ = s.LoadLockout(ctx)
	if lockout.Attempts != 0 {
		t.Errorf("LoadLockout() after reset = %+v, want empty", lockout)
	}
}
