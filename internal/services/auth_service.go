package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/baharkarakas/storefront-backend/internal/metrics"
	"github.com/baharkarakas/storefront-backend/internal/models"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
)

type CredentialLookup interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type TokenIssuer interface {
	Issue(userID string, role models.Role) (string, time.Time, error)
}

type LoginResult struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	User      models.PublicUser `json:"user"`
}

// AuthService runs the login flow: lookup, password check, token issue.
type AuthService struct {
	users  CredentialLookup
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewAuthService(users CredentialLookup, h PasswordHasher, t TokenIssuer) *AuthService {
	return &AuthService{users: users, hasher: h, tokens: t}
}

// Login never tells the caller whether the email exists: an unknown email
// still pays for a full bcrypt comparison and yields ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	email = models.NormalizeEmail(email)

	u, err := s.users.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		s.hasher.VerifyDummy(ctx, password)
		return s.reject(email)
	case err != nil:
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return LoginResult{}, fmt.Errorf("lookup user: %w", err)
	}

	if !s.hasher.Verify(ctx, password, u.PasswordHash) {
		return s.reject(email)
	}

	tok, exp, err := s.tokens.Issue(u.ID, u.Role)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return LoginResult{}, fmt.Errorf("issue token: %w", err)
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	slog.Debug("login ok", "email", email, "user_id", u.ID)
	return LoginResult{Token: tok, ExpiresAt: exp, User: u.Public()}, nil
}

func (s *AuthService) reject(email string) (LoginResult, error) {
	metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
	slog.Debug("login rejected", "email", email)
	return LoginResult{}, ErrInvalidCredentials
}
