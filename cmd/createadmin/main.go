// Command createadmin replaces the account at ADMIN_EMAIL with a fresh admin
// account. It talks to the store directly and is not reachable over HTTP.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/config"
	"github.com/baharkarakas/storefront-backend/internal/db"
	"github.com/baharkarakas/storefront-backend/internal/logger"
	"github.com/baharkarakas/storefront-backend/internal/services"
)

func main() {
	cfg := config.Load()
	flag.StringVar(&cfg.AdminName, "name", cfg.AdminName, "admin display name")
	flag.StringVar(&cfg.AdminEmail, "email", cfg.AdminEmail, "admin email")
	flag.BoolVar(&cfg.Migrate, "migrate", cfg.Migrate, "apply migrations first")
	flag.Parse()

	log := logger.New(cfg.Env, os.Stderr)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repos, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		log.Error("store", "err", err)
		os.Exit(1)
	}
	defer closeStore()

	users := services.NewUserService(repos.Users, auth.NewHasher(cfg.BcryptCost, nil), repos.AuditLogs)
	u, err := users.BootstrapAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Error("create admin", "err", err)
		closeStore()
		os.Exit(1)
	}
	log.Info("admin created", "id", u.ID, "email", u.Email)
}
