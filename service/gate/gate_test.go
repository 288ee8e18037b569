package gate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/core/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	gate     *Gate
	creds    *mocks.MockCredentialStore
	users    *mocks.MockUserStore
	notifier *mocks.MockNotifier
	user     *core.User
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		creds:    mocks.NewMockCredentialStore(ctrl),
		users:    mocks.NewMockUserStore(ctrl),
		notifier: mocks.NewMockNotifier(ctrl),
		user:     &core.User{Connected: true, Email: "a@b.c"},
	}

	f.creds.EXPECT().ValidatePin(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, pin string) (bool, error) {
		return pin == core.DemoPin, nil
	}).AnyTimes()
	f.creds.EXPECT().SaveLockout(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.users.EXPECT().Find(gomock.Any()).DoAndReturn(func(context.Context) (*core.User, error) {
		u := *f.user
		return &u, nil
	}).AnyTimes()
	f.users.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *core.User) error {
		f.user = u
		return nil
	}).AnyTimes()
	f.notifier.EXPECT().Show(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	f.gate = New(f.creds, f.users, f.notifier, slog.New(slog.NewTextHandler(io.Discard, nil)), DefaultConfig())
	return f
}

var payment = core.PaymentAction{
	Method:    core.PaymentMethodBank,
	Source:    core.AccountBank,
	Recipient: "john.doe@email.com",
	Amount:    decimal.NewFromInt(100),
	Fee:       decimal.NewFromInt(1),
}

func TestInputFiltersAndCaps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.gate.Open(ctx, payment); err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	tests := []struct {
		name   string
		input  string
		back   bool
		digits int
		state  State
	}{
		{name: "letters dropped", input: "ab-", digits: 0, state: StateIdle},
		{name: "partial", input: "12x3", digits: 3, state: StateEntering},
		{name: "backspace", back: true, digits: 2, state: StateEntering},
		{name: "capped", input: "3456789", digits: 6, state: StateReady},
		{name: "backspace from ready", back: true, digits: 5, state: StateEntering},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Status
			if tt.back {
				s = f.gate.Backspace()
			} else {
				s = f.gate.Input(tt.input)
			}

			if s.Digits != tt.digits || s.State != tt.state {
				t.Errorf("status = %+v, want digits %d state %s", s, tt.digits, tt.state)
			}

			if !s.Open || s.Prompt == nil || s.Prompt.Title != "Confirm Payment" {
				t.Errorf("status = %+v, want open with payment prompt", s)
			}
		})
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("closed", func(t *testing.T) {
		f := newFixture(t)
		f.gate.Input(core.DemoPin)
		if _, err := f.gate.Submit(ctx); !errors.Is(err, core.ErrGateClosed) {
			t.Errorf("Submit() error = %v, want ErrGateClosed", err)
		}
	})

	t.Run("incomplete", func(t *testing.T) {
		f := newFixture(t)
		_ = f.gate.Open(ctx, payment)
		f.gate.Input("123")
		if _, err := f.gate.Submit(ctx); !errors.Is(err, core.ErrPinIncomplete) {
			t.Errorf("Submit() error = %v, want ErrPinIncomplete", err)
		}
	})

	t.Run("success resets attempts", func(t *testing.T) {
		f := newFixture(t)
		_ = f.gate.Open(ctx, payment)

		for i := 0; i < 4; i++ {
			f.gate.Input("000000")
			if _, err := f.gate.Submit(ctx); !errors.Is(err, core.ErrIncorrectPin) {
				t.Fatalf("Submit() #%d error = %v, want ErrIncorrectPin", i+1, err)
			}
		}

		if s := f.gate.Status(); s.Attempts != 4 || s.Remaining != 1 || s.State != StateIdle {
			t.Fatalf("Status() = %+v, want 4 attempts", s)
		}

		f.gate.Input(core.DemoPin)
		action, err := f.gate.Submit(ctx)
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}

		if action != payment {
			t.Errorf("Submit() action = %+v, want %+v", action, payment)
		}

		if s := f.gate.Status(); s.Attempts != 0 || s.Open || s.State != StateIdle {
			t.Errorf("Status() = %+v, want idle closed gate", s)
		}
	})
}

func TestLockout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_ = f.gate.Open(ctx, payment)

	for i := 1; i <= 5; i++ {
		f.gate.Input("654321")
		_, err := f.gate.Submit(ctx)

		want := core.ErrIncorrectPin
		if i == 5 {
			want = core.ErrAccountLocked
		}

		if !errors.Is(err, want) {
			t.Fatalf("Submit() #%d error = %v, want %v", i, err, want)
		}
	}

	s := f.gate.Status()
	if s.State != StateLocked || s.LockRemaining != 300 || s.Attempts != 5 {
		t.Fatalf("Status() = %+v, want locked for 300s", s)
	}

	if !f.user.AccountLocked {
		t.Error("user.AccountLocked = false, want true")
	}

	// the sixth try is rejected without touching the counter
	if s := f.gate.Input(core.DemoPin); s.Digits != 0 {
		t.Errorf("Input() while locked = %+v, want no digits", s)
	}

	if _, err := f.gate.Submit(ctx); !errors.Is(err, core.ErrGateLocked) {
		t.Errorf("Submit() while locked error = %v, want ErrGateLocked", err)
	}

	if s := f.gate.Status(); s.Attempts != 5 {
		t.Errorf("Status().Attempts = %d, want 5", s.Attempts)
	}

	if err := f.gate.Open(ctx, payment); !errors.Is(err, core.ErrGateLocked) {
		t.Errorf("Open() while locked error = %v, want ErrGateLocked", err)
	}

	f.gate.Cancel()
	if s := f.gate.Status(); s.State != StateLocked || s.Open {
		t.Errorf("Status() after cancel = %+v, want locked and closed", s)
	}

	for i := 0; i < 299; i++ {
		if err := f.gate.Tick(ctx); err != nil {
			t.Fatalf("Tick() error = %v", err)
		}
	}

	if s := f.gate.Status(); s.State != StateLocked || s.LockRemaining != 1 {
		t.Fatalf("Status() after 299 ticks = %+v, want 1s left", s)
	}

	if err := f.gate.Tick(ctx); err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if s := f.gate.Status(); s.State != StateIdle || s.Attempts != 0 || s.LockRemaining != 0 {
		t.Errorf("Status() after unlock = %+v, want idle with no attempts", s)
	}

	if f.user.AccountLocked {
		t.Error("user.AccountLocked = true after unlock, want false")
	}

	if err := f.gate.Open(ctx, payment); err != nil {
		t.Errorf("Open() after unlock error = %v", err)
	}
}

func TestCancelDiscards(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_ = f.gate.Open(ctx, payment)
	f.gate.Input(core.DemoPin)
	f.gate.Cancel()

	if s := f.gate.Status(); s.Open || s.Digits != 0 {
		t.Errorf("Status() = %+v, want closed empty gate", s)
	}

	if _, err := f.gate.Submit(ctx); !errors.Is(err, core.ErrGateClosed) {
		t.Errorf("Submit() after cancel error = %v, want ErrGateClosed", err)
	}
}

func TestOpenReplacesPending(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	premium := core.PremiumAction{Plan: "Premium", Price: decimal.RequireFromString("9.99")}

	_ = f.gate.Open(ctx, payment)
	f.gate.Input("123")
	_ = f.gate.Open(ctx, premium)

	if s := f.gate.Status(); s.Digits != 0 || s.Prompt.Title != "Upgrade to Premium" {
		t.Fatalf("Status() = %+v, want fresh premium prompt", s)
	}

	f.gate.Input(core.DemoPin)
	action, err := f.gate.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if action.Type() != core.ActionPremium {
		t.Errorf("Submit() action = %s, want premium", action.Type())
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		lockout  core.Lockout
		state    State
		attempts int
		left     int
	}{
		{name: "nothing stored", lockout: core.Lockout{}, state: StateIdle},
		{name: "failed attempts", lockout: core.Lockout{Attempts: 3}, state: StateIdle, attempts: 3},
		{name: "active lock", lockout: core.Lockout{Attempts: 5, LockedUntil: now.Add(90500 * time.Millisecond)}, state: StateLocked, attempts: 5, left: 91},
		{name: "expired lock", lockout: core.Lockout{Attempts: 5, LockedUntil: now.Add(-time.Second)}, state: StateIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gate.now = func() time.Time { return now }

			lockout := tt.lockout
			f.creds.EXPECT().LoadLockout(gomock.Any()).Return(&lockout, nil)

			if err := f.gate.Restore(ctx); err != nil {
				t.Fatalf("Restore() error = %v", err)
			}

			s := f.gate.Status()
			if s.State != tt.state || s.Attempts != tt.attempts || s.LockRemaining != tt.left {
				t.Errorf("Status() = %+v, want state %s attempts %d left %d", s, tt.state, tt.attempts, tt.left)
			}
		})
	}
}
