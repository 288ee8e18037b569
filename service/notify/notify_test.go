package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pandodao/algopayx/core"
)

func newTestService(cfg Config) (*Service, *time.Time) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	s := New(slog.New(slog.NewTextHandler(io.Discard, nil)), cfg)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestShowExpires(t *testing.T) {
	s, now := newTestService(DefaultConfig())
	ctx := context.Background()

	s.Show(ctx, "Payment completed successfully!", core.SeveritySuccess)
	*now = now.Add(time.Second)
	s.Show(ctx, "Insufficient balance", core.SeverityError)

	active := s.Active()
	if len(active) != 2 {
		t.Fatalf("Active() = %d toasts, want 2", len(active))
	}

	if active[0].Message != "Payment completed successfully!" || active[1].Severity != core.SeverityError {
		t.Errorf("Active() = %+v, unexpected order", active)
	}

	*now = now.Add(2500 * time.Millisecond)
	active = s.Active()
	if len(active) != 1 || active[0].Message != "Insufficient balance" {
		t.Errorf("Active() after 3.5s = %+v, want only the second toast", active)
	}

	*now = now.Add(time.Second)
	if active := s.Active(); len(active) != 0 {
		t.Errorf("Active() after ttl = %+v, want none", active)
	}
}

func TestDismiss(t *testing.T) {
	s, _ := newTestService(DefaultConfig())
	ctx := context.Background()

	s.Show(ctx, "one", core.SeverityInfo)
	s.Show(ctx, "two", core.SeverityInfo)

	id := s.Active()[0].ID
	if !s.Dismiss(id) {
		t.Fatalf("Dismiss(%s) = false, want true", id)
	}

	if s.Dismiss(id) {
		t.Errorf("Dismiss(%s) twice = true, want false", id)
	}

	if active := s.Active(); len(active) != 1 || active[0].Message != "two" {
		t.Errorf("Active() = %+v, want only two", active)
	}
}

func TestCapacity(t *testing.T) {
	s, _ := newTestService(Config{TTL: time.Minute, Capacity: 3})
	ctx := context.Background()

	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		s.Show(ctx, msg, core.SeverityInfo)
	}

	active := s.Active()
	if len(active) != 3 || active[0].Message != "c" || active[2].Message != "e" {
		t.Errorf("Active() = %+v, want c..e", active)
	}
}

func TestNewRejectsEmptyConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "no ttl", cfg: Config{Capacity: 3}},
		{name: "no capacity", cfg: Config{TTL: time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%+v) did not panic", tt.cfg)
				}
			}()

			New(slog.New(slog.NewTextHandler(io.Discard, nil)), tt.cfg)
		})
	}
}
