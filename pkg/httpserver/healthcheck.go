package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/salesdesk/pkg/logger"
)

// HealthCheckHandler returns a handler usable for liveness and readiness
// probes.
//
// With no dependency checks the handler answers 200 OK with body "ALIVE".
// With checks supplied, all must succeed for a 200 OK "READY" response;
// any failure yields 500 with body "NOT_READY".
func HealthCheckHandler(ctx context.Context, log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	}
}
