package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/baharkarakas/storefront-backend/internal/api/httpx"
	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/metrics"
)

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate verifies the bearer token and attaches the identity to the
// request context. Every failure gets the same 401 body.
func Authenticate(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearer(r.Header.Get("Authorization"))
			if !ok {
				reject(w, r, "missing_token", nil)
				return
			}
			id, err := v.Verify(token)
			if err != nil {
				reject(w, r, reason(err), err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

func bearer(h string) (string, bool) {
	const prefix = "bearer "
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}
	tok := strings.TrimSpace(h[len(prefix):])
	return tok, tok != ""
}

func reason(err error) string {
	switch {
	case errors.Is(err, auth.ErrExpired):
		return "expired"
	case errors.Is(err, auth.ErrInvalidSignature):
		return "invalid_signature"
	default:
		return "malformed"
	}
}

func reject(w http.ResponseWriter, r *http.Request, why string, err error) {
	metrics.AuthRejections.WithLabelValues(why).Inc()
	slog.Debug("auth rejected", "reason", why, "path", r.URL.Path, "request_id", RequestIDFrom(r.Context()), "err", err)
	httpx.WriteError(w, http.StatusUnauthorized, "unauthenticated", "unauthenticated", nil)
}
