package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/repository/memory"
)

type fixture struct {
	users    *memory.Users
	audit    *memory.AuditLogs
	hasher   *auth.Hasher
	tokens   *auth.TokenManager
	userSvc  *UserService
	loginSvc *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tm, err := auth.NewTokenManager("test-secret", "storefront", time.Hour)
	require.NoError(t, err)

	f := &fixture{
		users:  memory.NewUsers(),
		audit:  memory.NewAuditLogs(),
		hasher: auth.NewHasher(bcrypt.MinCost, nil),
		tokens: tm,
	}
	f.userSvc = NewUserService(f.users, f.hasher, f.audit)
	f.loginSvc = NewAuthService(f.userSvc, f.hasher, f.tokens)
	return f
}
