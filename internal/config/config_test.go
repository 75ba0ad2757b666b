package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "STORE_DRIVER", "JWT_SECRET", "JWT_TTL", "BCRYPT_COST", "CORS_ORIGINS", "ADMIN_EMAIL"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("BCRYPT_COST", "12")
	t.Setenv("APP_MIGRATE", "true")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://shop.example.com")

	cfg := Load()
	assert.Equal(t, StoreMemory, cfg.StoreDriver)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.True(t, cfg.Migrate)
	assert.Equal(t, []string{"http://localhost:3000", "https://shop.example.com"}, cfg.CORSOrigins)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("JWT_ISSUER", "")
	require.NoError(t, os.Unsetenv("JWT_ISSUER"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_ISSUER=from-dotenv\n"), 0o600))

	assert.Equal(t, "from-dotenv", Load().JWTIssuer)
}

func TestValidate(t *testing.T) {
	base := Config{
		Env: "dev", StoreDriver: StoreMemory, JWTSecret: "s",
		TokenTTL: time.Hour, BcryptCost: 10, HashWorkers: 1,
	}
	require.NoError(t, base.Validate())

	bad := base
	bad.JWTSecret = ""
	assert.Error(t, bad.Validate())

	bad = base
	bad.Env, bad.JWTSecret = "prod", "changeme-secret"
	assert.Error(t, bad.Validate())

	bad = base
	bad.BcryptCost = 2
	assert.Error(t, bad.Validate())

	bad = base
	bad.StoreDriver = "mongo"
	assert.Error(t, bad.Validate())

	bad = base
	bad.StoreDriver, bad.DatabaseURL = StorePostgres, ""
	assert.Error(t, bad.Validate())
}
