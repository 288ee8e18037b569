package countdown

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

type counter struct {
	ticks atomic.Int32
}

func (c *counter) Tick(context.Context) error {
	c.ticks.Add(1)
	return nil
}

func TestRun(t *testing.T) {
	c := &counter{}
	w := New(c, slog.New(slog.NewTextHandler(io.Discard, nil)))
	w.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	deadline := time.After(5 * time.Second)
	for c.ticks.Load() < 3 {
		select {
		case <-deadline:
			t.Fatalf("ticks = %d after 5s, want >= 3", c.ticks.Load())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not stop after cancel")
	}

	stopped := c.ticks.Load()
	time.Sleep(10 * time.Millisecond)
	if n := c.ticks.Load(); n != stopped {
		t.Errorf("ticks after stop = %d, want %d", n, stopped)
	}
}
