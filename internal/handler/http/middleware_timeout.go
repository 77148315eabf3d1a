package http

import (
	"context"
	"net/http"
	"time"
)

type timeoutConfig struct {
	duration time.Duration
}

// withTimeout bounds every request with the configured deadline. Database
// calls observe the deadline through the request context; a zero duration
// disables the bound.
func (h *Handler) withTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.requestTimeout.duration <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout.duration)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
