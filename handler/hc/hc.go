package hc

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

func Handler(version string, db Pinger) http.Handler {
	t := time.Now()
	fn := func(w http.ResponseWriter, r *http.Request) {
		status, dbStatus := http.StatusOK, "ok"

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			status, dbStatus = http.StatusServiceUnavailable, err.Error()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"version": version,
			"uptime":  time.Since(t).String(),
			"db":      dbStatus,
		})
	}

	return http.HandlerFunc(fn)
}
