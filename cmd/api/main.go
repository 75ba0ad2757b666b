package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baharkarakas/storefront-backend/internal/api"
	"github.com/baharkarakas/storefront-backend/internal/auth"
	"github.com/baharkarakas/storefront-backend/internal/cache"
	"github.com/baharkarakas/storefront-backend/internal/config"
	"github.com/baharkarakas/storefront-backend/internal/db"
	"github.com/baharkarakas/storefront-backend/internal/logger"
	"github.com/baharkarakas/storefront-backend/internal/metrics"
	"github.com/baharkarakas/storefront-backend/internal/services"
	"github.com/baharkarakas/storefront-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env, os.Stdout)
	slog.SetDefault(log)

	if err := cfg.Validate(); err != nil {
		log.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := db.OpenStore(ctx, cfg)
	if err != nil {
		log.Error("store", "err", err)
		os.Exit(1)
	}
	defer closeStore()

	metrics.Init()
	wp := worker.NewPool(cfg.HashWorkers)
	defer wp.Stop()

	hasher := auth.NewHasher(cfg.BcryptCost, wp)
	tm, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	if err != nil {
		log.Error("token manager", "err", err)
		os.Exit(1)
	}

	// audit writes run on their own pool
	auditPool := worker.NewPool(1)
	defer auditPool.Stop()
	auditLogs := services.NewAsyncAuditLogs(repos.AuditLogs, auditPool)

	userSvc := services.NewUserService(repos.Users, hasher, auditLogs)
	authSvc := services.NewAuthService(userSvc, hasher, tm)

	var listCache services.ListCache
	if rdb := openRedis(ctx, cfg.RedisURL); rdb != nil {
		defer rdb.Close()
		listCache = cache.NewProductCache(rdb, cfg.ProductCacheTTL)
	}
	productSvc := services.NewProductService(repos.Products, listCache, auditLogs)

	if cfg.BootstrapAdmin {
		u, err := userSvc.BootstrapAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			log.Error("bootstrap admin", "err", err)
			os.Exit(1)
		}
		log.Info("bootstrap admin ready", "email", u.Email, "id", u.ID)
	}

	r := api.NewRouter(api.RouterDeps{
		CORSOrigins: cfg.CORSOrigins,
		Tokens:      tm,
		Auth:        authSvc,
		Users:       userSvc,
		Products:    productSvc,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		// late handlers get worker.ErrStopped from the pools
		log.Warn("shutdown", "err", err)
	}
}

// openRedis returns nil when caching is disabled or Redis is unreachable.
func openRedis(ctx context.Context, url string) *redis.Client {
	if url == "" {
		return nil
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		slog.Warn("redis url", "err", err)
		return nil
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable; product cache disabled", "err", err)
		_ = rdb.Close()
		return nil
	}
	return rdb
}
