package gate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/algopayx/core"
)

type State string

const (
	StateIdle     State = "idle"
	StateEntering State = "entering"
	StateReady    State = "ready"
	StateLocked   State = "locked"
)

type Config struct {
	PinLength   int `valid:"required"`
	MaxAttempts int `valid:"required"`
	// LockSeconds is the lockout countdown started by the last failed attempt
	LockSeconds int `valid:"required"`
}

func DefaultConfig() Config {
	return Config{
		PinLength:   6,
		MaxAttempts: 5,
		LockSeconds: 300,
	}
}

type Status struct {
	State State `json:"state"`
	// Open reports whether an action is waiting for authorization
	Open          bool         `json:"open"`
	Digits        int          `json:"digits"`
	Attempts      int          `json:"attempts"`
	Remaining     int          `json:"remaining"`
	LockRemaining int          `json:"lock_remaining"`
	Prompt        *core.Prompt `json:"prompt,omitempty"`
}

// Gate guards balance mutations behind PIN entry, counting failures and
// locking for a fixed countdown once they reach MaxAttempts.
type Gate struct {
	creds    core.CredentialStore
	users    core.UserStore
	notifier core.Notifier
	logger   *slog.Logger
	cfg      Config
	now      func() time.Time

	mux       sync.Mutex
	pending   core.Action
	buffer    []byte
	attempts  int
	countdown int
}

func New(
	creds core.CredentialStore,
	users core.UserStore,
	notifier core.Notifier,
	logger *slog.Logger,
	cfg Config,
) *Gate {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Gate{
		creds:    creds,
		users:    users,
		notifier: notifier,
		logger:   logger.With("service", "gate"),
		cfg:      cfg,
		now:      time.Now,
	}
}

func (g *Gate) locked() bool {
	return g.countdown > 0
}

func (g *Gate) state() State {
	switch n := len(g.buffer); {
	case g.locked():
		return StateLocked
	case n == 0:
		return StateIdle
	case n < g.cfg.PinLength:
		return StateEntering
	default:
		return StateReady
	}
}

// Restore rehydrates the attempt counter and an unexpired lock from the
// persisted lockout record.
func (g *Gate) Restore(ctx context.Context) error {
	lockout, err := g.creds.LoadLockout(ctx)
	if err != nil {
		return fmt.Errorf("load lockout: %w", err)
	}

	g.mux.Lock()
	defer g.mux.Unlock()

	g.attempts = lockout.Attempts
	g.countdown = 0

	if lockout.LockedUntil.IsZero() {
		return nil
	}

	if left := lockout.LockedUntil.Sub(g.now()); left > 0 {
		g.countdown = int((left + time.Second - 1) / time.Second)
		g.logger.Info("lock restored", "remaining", g.countdown)
		return nil
	}

	// the lock ran out while we were down
	return g.unlock(ctx, false)
}

// Open stages action, replacing any pending one and clearing the buffer.
func (g *Gate) Open(ctx context.Context, action core.Action) error {
	g.mux.Lock()
	defer g.mux.Unlock()

	if g.locked() {
		return fmt.Errorf("%w: %d seconds remaining", core.ErrGateLocked, g.countdown)
	}

	if g.pending != nil {
		g.logger.Debug("pending action replaced", "type", g.pending.Type())
	}

	g.pending = action
	g.buffer = g.buffer[:0]
	g.logger.Debug("gate opened", "type", action.Type())
	return nil
}

// Input appends the digits of s to the buffer, dropping everything else and
// anything past the pin length.
func (g *Gate) Input(s string) Status {
	g.mux.Lock()
	defer g.mux.Unlock()

	if !g.locked() {
		for i := 0; i < len(s) && len(g.buffer) < g.cfg.PinLength; i++ {
			if c := s[i]; c >= '0' && c <= '9' {
				g.buffer = append(g.buffer, c)
			}
		}
	}

	return g.status()
}

func (g *Gate) Backspace() Status {
	g.mux.Lock()
	defer g.mux.Unlock()

	if !g.locked() && len(g.buffer) > 0 {
		g.buffer = g.buffer[:len(g.buffer)-1]
	}

	return g.status()
}

// Submit checks the buffered pin. On success the gate closes and hands the
// pending action back for commit.
func (g *Gate) Submit(ctx context.Context) (core.Action, error) {
	g.mux.Lock()
	defer g.mux.Unlock()

	if g.locked() {
		return nil, fmt.Errorf("%w: %d seconds remaining", core.ErrGateLocked, g.countdown)
	}

	if g.pending == nil {
		return nil, core.ErrGateClosed
	}

	if len(g.buffer) < g.cfg.PinLength {
		return nil, core.ErrPinIncomplete
	}

	pin := string(g.buffer)
	g.buffer = g.buffer[:0]

	ok, err := g.creds.ValidatePin(ctx, pin)
	if err != nil {
		g.logger.Error("creds.ValidatePin", "err", err)
		return nil, err
	}

	if ok {
		action := g.pending
		g.pending = nil

		if g.attempts > 0 {
			g.attempts = 0
			if err := g.creds.SaveLockout(ctx, &core.Lockout{}); err != nil {
				g.logger.Error("creds.SaveLockout", "err", err)
			}
		}

		g.logger.Info("authorized", "type", action.Type())
		return action, nil
	}

	g.attempts++
	if g.attempts < g.cfg.MaxAttempts {
		remaining := g.cfg.MaxAttempts - g.attempts
		if err := g.creds.SaveLockout(ctx, &core.Lockout{Attempts: g.attempts}); err != nil {
			g.logger.Error("creds.SaveLockout", "err", err)
		}

		g.notifier.Show(ctx, fmt.Sprintf("Incorrect PIN. %d attempts remaining.", remaining), core.SeverityError)
		return nil, fmt.Errorf("%w: %d attempts remaining", core.ErrIncorrectPin, remaining)
	}

	if err := g.lock(ctx); err != nil {
		return nil, err
	}

	return nil, core.ErrAccountLocked
}

func (g *Gate) lock(ctx context.Context) error {
	g.countdown = g.cfg.LockSeconds
	lockout := &core.Lockout{
		Attempts:    g.attempts,
		LockedUntil: g.now().Add(time.Duration(g.cfg.LockSeconds) * time.Second),
	}

	if err := g.creds.SaveLockout(ctx, lockout); err != nil {
		g.logger.Error("creds.SaveLockout", "err", err)
	}

	if err := g.setAccountLocked(ctx, true); err != nil {
		return err
	}

	g.logger.Warn("locked", "attempts", g.attempts, "seconds", g.countdown)
	g.notifier.Show(ctx, fmt.Sprintf("Account locked for %d minutes due to multiple failed attempts", g.cfg.LockSeconds/60), core.SeverityError)
	return nil
}

func (g *Gate) unlock(ctx context.Context, notify bool) error {
	g.countdown = 0
	g.attempts = 0

	if err := g.creds.SaveLockout(ctx, &core.Lockout{}); err != nil {
		g.logger.Error("creds.SaveLockout", "err", err)
	}

	if err := g.setAccountLocked(ctx, false); err != nil {
		return err
	}

	g.logger.Info("unlocked")
	if notify {
		g.notifier.Show(ctx, "Account unlocked. You can try again.", core.SeverityInfo)
	}

	return nil
}

func (g *Gate) setAccountLocked(ctx context.Context, locked bool) error {
	user, err := g.users.Find(ctx)
	if err != nil {
		g.logger.Error("users.Find", "err", err)
		return err
	}

	if user.AccountLocked == locked {
		return nil
	}

	user.AccountLocked = locked
	if err := g.users.Save(ctx, user); err != nil {
		g.logger.Error("users.Save", "err", err)
		return err
	}

	return nil
}

// Tick advances the lock countdown by one second.
func (g *Gate) Tick(ctx context.Context) error {
	g.mux.Lock()
	defer g.mux.Unlock()

	if !g.locked() {
		return nil
	}

	g.countdown--
	if g.countdown > 0 {
		return nil
	}

	return g.unlock(ctx, true)
}

// Cancel drops the pending action and the buffer. An active lock is kept.
func (g *Gate) Cancel() {
	g.mux.Lock()
	defer g.mux.Unlock()

	if g.pending != nil {
		g.logger.Debug("cancelled", "type", g.pending.Type())
	}

	g.pending = nil
	g.buffer = g.buffer[:0]
}

// Locked reports whether the lock countdown is running.
func (g *Gate) Locked() bool {
	g.mux.Lock()
	defer g.mux.Unlock()

	return g.locked()
}

func (g *Gate) Status() Status {
	g.mux.Lock()
	defer g.mux.Unlock()

	return g.status()
}

func (g *Gate) status() Status {
	s := Status{
		State:         g.state(),
		Open:          g.pending != nil,
		Digits:        len(g.buffer),
		Attempts:      g.attempts,
		Remaining:     g.cfg.MaxAttempts - g.attempts,
		LockRemaining: g.countdown,
	}

	if g.pending != nil {
		p := g.pending.Prompt()
		s.Prompt = &p
	}

	return s
}

