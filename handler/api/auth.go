package api

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/service/session"
)

type sessionResponse struct {
	User  *core.User `json:"user"`
	Token string     `json:"token"`
}

func (s *Server) issueToken(subject string) (string, error) {
	claims := map[string]any{
		"sub": subject,
		"jti": uuid.NewString(),
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, s.cfg.TokenTTL)

	_, token, err := s.auth.Encode(claims)
	return token, err
}

func (s *Server) renderSession(w http.ResponseWriter, r *http.Request, status int, user *core.User) {
	subject := user.Email
	if subject == "" {
		subject = user.WalletAddress
	}

	token, err := s.issueToken(subject)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, status, sessionResponse{User: user, Token: token})
}

// requireConnected rejects valid tokens once the user has logged out.
func (s *Server) requireConnected(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := s.users.Find(r.Context())
		if err != nil {
			s.renderError(w, r, err)
			return
		}

		if !user.Connected {
			renderJSON(w, http.StatusUnauthorized, errorResponse{Code: "unauthorized", Message: "sign in or connect a wallet first"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req session.SignUpRequest
	if err := decode(w, r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	user, err := s.session.SignUp(r.Context(), req)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderSession(w, r, http.StatusCreated, user)
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := decode(w, r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	user, err := s.session.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderSession(w, r, http.StatusOK, user)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Logout(r.Context()); err != nil {
		s.renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Find(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, user)
}

func (s *Server) handleConnectWallet(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind core.WalletKind `json:"kind"`
	}

	if err := decode(w, r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	user, err := s.session.ConnectWallet(r.Context(), req.Kind)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderSession(w, r, http.StatusOK, user)
}

func (s *Server) handleDisconnectWallet(w http.ResponseWriter, r *http.Request) {
	user, err := s.session.DisconnectWallet(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, user)
}
