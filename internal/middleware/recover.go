package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/baharkarakas/storefront-backend/internal/api/httpx"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("panic", "err", rec, "request_id", RequestIDFrom(r.Context()), "stack", string(debug.Stack()))
				httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
