package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// HealthCheck reports whether a backing service is reachable.
// *pgxpool.Pool satisfies it.
type HealthCheck interface {
	Ping(ctx context.Context) error
}

const healthTimeout = 2 * time.Second

func healthz(check HealthCheck, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
			defer cancel()
			if err := check.Ping(ctx); err != nil {
				if logger != nil {
					logger.Warn("health check failed", slog.Any("error", err))
				}
				httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
