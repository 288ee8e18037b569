package api

import (
	"context"
	"net/http"

	"github.com/pandodao/algopayx/core"
	"github.com/pandodao/algopayx/service/gate"
)

type stageResponse struct {
	Prompt *core.Prompt `json:"prompt"`
	Gate   gate.Status  `json:"gate"`
}

// stageHandler decodes a request of type T and stages it behind the gate.
// A nil prompt means nothing was staged, e.g. an upgrade for a member.
func stageHandler[T any](s *Server, stage func(context.Context, T) (*core.Prompt, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := decode(w, r, &req); err != nil {
			s.renderError(w, r, err)
			return
		}

		prompt, err := stage(r.Context(), req)
		if err != nil {
			s.renderError(w, r, err)
			return
		}

		renderJSON(w, http.StatusOK, stageResponse{Prompt: prompt, Gate: s.gate.Status()})
	}
}

func (s *Server) handleGateStatus(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.gate.Status())
}

func (s *Server) handleGateInput(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Digits string `json:"digits"`
	}

	if err := decode(w, r, &req); err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, s.gate.Input(req.Digits))
}

func (s *Server) handleGateBackspace(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, s.gate.Backspace())
}

func (s *Server) handleGateSubmit(w http.ResponseWriter, r *http.Request) {
	receipt, err := s.checkout.Submit(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, receipt)
}

func (s *Server) handleGateCancel(w http.ResponseWriter, r *http.Request) {
	s.checkout.Cancel()
	renderJSON(w, http.StatusOK, s.gate.Status())
}
