package middleware

import (
	"net/http"
	"sync/atomic"

	"cinerank-auth/internal/data/repository"

	"go.uber.org/zap"
)

// EnsureSchema retries schema creation in front of every request until one
// attempt succeeds. Failures are logged and the request proceeds anyway.
func EnsureSchema(schema repository.SchemaRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	var ready atomic.Bool

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !ready.Load() {
				if err := schema.Ensure(r.Context()); err != nil {
					logger.Debug("Schema ensure skipped", zap.Error(err))
				} else {
					ready.Store(true)
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
