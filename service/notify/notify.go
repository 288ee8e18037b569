package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/pandodao/algopayx/core"
)

type Config struct {
	TTL      time.Duration `valid:"required"`
	Capacity int           `valid:"required"`
}

func DefaultConfig() Config {
	return Config{
		TTL:      3 * time.Second,
		Capacity: 32,
	}
}

// Service keeps the short lived toast list. Toasts are logged as they are
// shown and expire after TTL.
type Service struct {
	logger *slog.Logger
	cfg    Config
	now    func() time.Time

	toasts []core.Toast
	mux    sync.Mutex
}

func New(logger *slog.Logger, cfg Config) *Service {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Service{
		logger: logger.With("service", "notify"),
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *Service) Show(ctx context.Context, message string, severity core.Severity) {
	now := s.now()
	toast := core.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.TTL),
	}

	level := slog.LevelInfo
	if severity == core.SeverityError {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "toast", "id", toast.ID, "severity", severity, "message", message)

	s.mux.Lock()
	defer s.mux.Unlock()

	s.toasts = append(s.expire(now), toast)
	if n := len(s.toasts) - s.cfg.Capacity; n > 0 {
		s.toasts = s.toasts[n:]
	}
}

// Active returns the toasts that have not expired, oldest first.
func (s *Service) Active() []core.Toast {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.toasts = s.expire(s.now())
	return append([]core.Toast(nil), s.toasts...)
}

// Dismiss removes the toast with id and reports whether it was active.
func (s *Service) Dismiss(id string) bool {
	s.mux.Lock()
	defer s.mux.Unlock()

	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return true
		}
	}

	return false
}

func (s *Service) expire(now time.Time) []core.Toast {
	live := s.toasts[:0]
	for _, t := range s.toasts {
		if now.Before(t.ExpiresAt) {
			live = append(live, t)
		}
	}

	return live
}
