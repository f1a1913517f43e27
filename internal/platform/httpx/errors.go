package httpx

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/biztime/biztime/internal/shared"
)

// HandlerFunc is an http.HandlerFunc that reports failures instead of
// writing them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts fn to net/http, rendering any returned error.
func Handle(logger *slog.Logger, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			RespondError(w, r, logger, err)
		}
	}
}

// StatusOf maps an error to its HTTP status code.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, shared.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondError renders err as {error:{message,status}}. Server errors are
// logged and their detail is withheld from the client.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		if logger != nil {
			logger.Error("request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("request_id", middleware.GetReqID(r.Context())),
				slog.Any("error", err),
			)
		}
		Fail(w, status, http.StatusText(status))
		return
	}
	Fail(w, status, shared.Message(err))
}

// NotFound renders unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Fail(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

// MethodNotAllowed renders routes matched with an unsupported verb.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	Fail(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
