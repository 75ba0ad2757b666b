package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/baharkarakas/storefront-backend/internal/config"
	repo "github.com/baharkarakas/storefront-backend/internal/repository"
	"github.com/baharkarakas/storefront-backend/internal/repository/memory"
	"github.com/baharkarakas/storefront-backend/internal/repository/postgres"
)

// OpenStore builds the repositories for the configured driver. The returned
// close func is never nil.
func OpenStore(ctx context.Context, cfg config.Config) (repo.Repositories, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		slog.Warn("using in-memory store; data is lost on restart")
		return memory.NewRepositories(), func() {}, nil
	case config.StorePostgres:
		pool, err := NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return repo.Repositories{}, nil, fmt.Errorf("db connect: %w", err)
		}
		if cfg.Migrate {
			if err := RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return repo.Repositories{}, nil, fmt.Errorf("migrations: %w", err)
			}
		}
		return postgres.NewRepositories(pool), pool.Close, nil
	default:
		return repo.Repositories{}, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
