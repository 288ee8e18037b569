package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/pandodao/algopayx/core"
)

const (
	minPasswordLength = 8
	pinLength         = 6
)

type SignUpRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Pin             string `json:"pin"`
	ConfirmPin      string `json:"confirm_pin"`
}

// Guard is the pin gate as seen by the session: a new or ended session
// drops whatever was staged, and the lock outlives the user record.
type Guard interface {
	Cancel()
	Locked() bool
}

func New(
	users core.UserStore,
	creds core.CredentialStore,
	bridge core.WalletBridge,
	guard Guard,
	notifier core.Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:    users,
		creds:    creds,
		bridge:   bridge,
		guard:    guard,
		notifier: notifier,
		logger:   logger.With("service", "session"),
	}
}

// Service manages who is signed in: email accounts and wallet connections.
type Service struct {
	users    core.UserStore
	creds    core.CredentialStore
	bridge   core.WalletBridge
	guard    Guard
	notifier core.Notifier
	logger   *slog.Logger

	mux sync.Mutex
}

func (s *Service) invalid(ctx context.Context, message string) error {
	s.notifier.Show(ctx, message, core.SeverityError)
	return fmt.Errorf("%w: %s", core.ErrInvalidInput, strings.ToLower(message))
}

func isPin(pin string) bool {
	return len(pin) == pinLength && govalidator.IsNumeric(pin)
}

func (s *Service) SignUp(ctx context.Context, req SignUpRequest) (*core.User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	email := strings.TrimSpace(req.Email)
	switch {
	case !govalidator.IsEmail(email):
		return nil, s.invalid(ctx, "Please enter a valid email")
	case req.Password != req.ConfirmPassword:
		return nil, s.invalid(ctx, "Passwords do not match")
	case len(req.Password) < minPasswordLength:
		return nil, s.invalid(ctx, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	case req.Pin != req.ConfirmPin:
		return nil, s.invalid(ctx, "PINs do not match")
	case !isPin(req.Pin):
		return nil, s.invalid(ctx, "PIN must be 6 digits")
	}

	if err := s.creds.Save(ctx, email, req.Password, req.Pin); err != nil {
		s.logger.Error("creds.Save", "err", err)
		return nil, err
	}

	s.guard.Cancel()
	user := &core.User{
		Connected:     true,
		Email:         email,
		HasPassword:   true,
		AccountLocked: s.guard.Locked(),
	}

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error("users.Save", "err", err)
		return nil, err
	}

	s.logger.Info("signed up", "email", email)
	s.notifier.Show(ctx, "Account created successfully!", core.SeveritySuccess)
	return user, nil
}

// SignIn keeps the stored premium membership when the same email signs in
// again.
func (s *Service) SignIn(ctx context.Context, email, password string) (*core.User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	email = strings.TrimSpace(email)
	ok, err := s.creds.ValidateCredentials(ctx, email, password)
	if err != nil {
		s.logger.Error("creds.ValidateCredentials", "err", err)
		return nil, err
	}

	if !ok {
		s.notifier.Show(ctx, "Invalid email or password", core.SeverityError)
		return nil, core.ErrInvalidCredentials
	}

	prev, err := s.users.Find(ctx)
	if err != nil {
		s.logger.Error("users.Find", "err", err)
		return nil, err
	}

	s.guard.Cancel()
	user := &core.User{
		Connected:     true,
		Email:         email,
		HasPassword:   true,
		AccountLocked: s.guard.Locked(),
	}

	if strings.EqualFold(prev.Email, email) {
		user.Premium = prev.Premium
		user.PremiumPlan = prev.PremiumPlan
	}

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error("users.Save", "err", err)
		return nil, err
	}

	s.logger.Info("signed in", "email", email)
	s.notifier.Show(ctx, "Signed in successfully!", core.SeveritySuccess)
	return user, nil
}

// Logout drops any wallet connection and any staged action, then resets the
// user to the signed out default. Balances and history are kept.
func (s *Service) Logout(ctx context.Context) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	user, err := s.users.Find(ctx)
	if err != nil {
		s.logger.Error("users.Find", "err", err)
		return err
	}

	if user.WalletAddress != "" {
		if err := s.bridge.Disconnect(ctx); err != nil && !errors.Is(err, core.ErrNotConnected) {
			s.logger.Error("bridge.Disconnect", "err", err)
		}
	}

	s.guard.Cancel()

	// a running lock stays on the signed out user
	if s.guard.Locked() {
		err = s.users.Save(ctx, &core.User{AccountLocked: true})
	} else {
		err = s.users.Reset(ctx)
	}

	if err != nil {
		s.logger.Error("users.Reset", "err", err)
		return err
	}

	s.notifier.Show(ctx, "Logged out successfully", core.SeverityInfo)
	return nil
}

func (s *Service) ConnectWallet(ctx context.Context, kind core.WalletKind) (*core.User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if !kind.Valid() {
		return nil, s.invalid(ctx, "Please select a supported wallet")
	}

	accounts, err := s.bridge.Connect(ctx, kind)
	if err != nil {
		s.logger.Error("bridge.Connect", "kind", kind, "err", err)
		s.notifier.Show(ctx, "Failed to connect wallet", core.SeverityError)
		return nil, err
	}

	if len(accounts) == 0 {
		s.notifier.Show(ctx, "Failed to connect wallet", core.SeverityError)
		return nil, fmt.Errorf("%w: wallet returned no accounts", core.ErrNotConnected)
	}

	user, err := s.users.Find(ctx)
	if err != nil {
		s.logger.Error("users.Find", "err", err)
		return nil, err
	}

	user.Connected = true
	user.WalletAddress = accounts[0].Address
	user.WalletKind = kind

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error("users.Save", "err", err)
		return nil, err
	}

	s.logger.Info("wallet connected", "kind", kind, "address", user.WalletAddress)
	s.notifier.Show(ctx, fmt.Sprintf("Connected to %s!", walletName(kind)), core.SeveritySuccess)
	return user, nil
}

// DisconnectWallet keeps an email session signed in.
func (s *Service) DisconnectWallet(ctx context.Context) (*core.User, error) {
	s.mux.Lock()
	defer s.mux.Unlock()

	if err := s.bridge.Disconnect(ctx); err != nil && !errors.Is(err, core.ErrNotConnected) {
		s.logger.Error("bridge.Disconnect", "err", err)
		return nil, err
	}

	user, err := s.users.Find(ctx)
	if err != nil {
		s.logger.Error("users.Find", "err", err)
		return nil, err
	}

	user.WalletAddress = ""
	user.WalletKind = ""
	user.Connected = user.Email != ""

	if err := s.users.Save(ctx, user); err != nil {
		s.logger.Error("users.Save", "err", err)
		return nil, err
	}

	s.notifier.Show(ctx, "Wallet disconnected", core.SeverityInfo)
	return user, nil
}

func walletName(kind core.WalletKind) string {
	switch kind {
	case core.WalletPera:
		return "Pera Wallet"
	case core.WalletMyAlgo:
		return "MyAlgo Wallet"
	case core.WalletDefly:
		return "Defly Wallet"
	case core.WalletExodus:
		return "Exodus Wallet"
	default:
		return string(kind)
	}
}
