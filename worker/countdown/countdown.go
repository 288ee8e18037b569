package countdown

import (
	"context"
	"log/slog"
	"time"
)

// Ticker is advanced once per elapsed second.
type Ticker interface {
	Tick(ctx context.Context) error
}

func New(gate Ticker, logger *slog.Logger) *Countdown {
	return &Countdown{
		gate:     gate,
		logger:   logger.With("worker", "countdown"),
		interval: time.Second,
	}
}

// Countdown drives the authorization lock timer. It stops with its context.
type Countdown struct {
	gate     Ticker
	logger   *slog.Logger
	interval time.Duration
}

func (w *Countdown) Run(ctx context.Context) error {
	w.logger.Info("countdown start")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.gate.Tick(ctx); err != nil {
				w.logger.Error("gate.Tick", "err", err)
			}
		}
	}
}
