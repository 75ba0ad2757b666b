package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/storefront-backend/internal/api/httpx"
	"github.com/baharkarakas/storefront-backend/internal/api/validate"
	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/middleware"
	"github.com/baharkarakas/storefront-backend/internal/services"
)

// writeErr maps service errors onto the API envelope. Anything unknown is a
// 500 whose cause stays in the server log.
func writeErr(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "validation failed", verrs)
	case errors.Is(err, services.ErrWeakPassword):
		httpx.WriteError(w, http.StatusBadRequest, "weak_password", err.Error(), nil)
	case errors.Is(err, auth.ErrPasswordTooLong):
		httpx.WriteError(w, http.StatusBadRequest, "weak_password", "password is too long", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid credentials", nil)
	case errors.Is(err, services.ErrDuplicateEmail):
		httpx.WriteError(w, http.StatusConflict, "duplicate_email", "Email already exists", nil)
	case errors.Is(err, services.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", notFoundMsg, nil)
	default:
		slog.Error("request failed", "path", r.URL.Path, "request_id", middleware.RequestIDFrom(r.Context()), "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "internal error", nil)
	}
}

func badBody(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid request body", err.Error())
}
