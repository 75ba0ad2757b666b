package middleware

import (
	"log/slog"
	"net/http"

	"github.com/baharkarakas/storefront-backend/internal/api/httpx"
	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/metrics"
	"github.com/baharkarakas/storefront-backend/internal/models"
)

// Authorize allows only the given role. It must be mounted after
// Authenticate; a request with no identity fails closed.
func Authorize(need models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := auth.IdentityFrom(r.Context())
			if !ok {
				slog.Error("authorize without identity", "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()))
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
				return
			}
			if id.Role != need {
				metrics.AuthRejections.WithLabelValues("forbidden").Inc()
				httpx.WriteError(w, http.StatusForbidden, "forbidden", "forbidden", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
