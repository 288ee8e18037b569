package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/oxtoacart/bpool"
	"github.com/pandodao/algopayx/core"
)

const maxBodySize = 1 << 20

var bufferPool = bpool.NewBufferPool(64)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errorCodes = []struct {
	err    error
	status int
	code   string
}{
	{core.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{core.ErrInsufficientFunds, http.StatusUnprocessableEntity, "insufficient_funds"},
	{core.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
	{core.ErrNotConnected, http.StatusConflict, "not_connected"},
	{core.ErrAccountLocked, http.StatusLocked, "account_locked"},
	{core.ErrGateLocked, http.StatusLocked, "gate_locked"},
	{core.ErrGateClosed, http.StatusConflict, "gate_closed"},
	{core.ErrPinIncomplete, http.StatusBadRequest, "pin_incomplete"},
	{core.ErrIncorrectPin, http.StatusForbidden, "incorrect_pin"},
	{core.ErrWalletNotSupported, http.StatusBadRequest, "wallet_not_supported"},
}

func renderJSON(w http.ResponseWriter, status int, v any) {
	buf := bufferPool.Get()
	defer bufferPool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			renderJSON(w, c.status, errorResponse{Code: c.code, Message: err.Error()})
			return
		}
	}

	s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	renderJSON(w, http.StatusInternalServerError, errorResponse{Code: "internal", Message: http.StatusText(http.StatusInternalServerError)})
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: decode body: %w", core.ErrInvalidInput, err)
	}

	return nil
}

// queryInt reads an optional non negative integer parameter.
func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s must be a non negative integer", core.ErrInvalidInput, key)
	}

	return n, nil
}
