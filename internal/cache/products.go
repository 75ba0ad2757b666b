// Package cache keeps public product listings in Redis. Any write bumps a
// version counter so stale pages are never read back.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/baharkarakas/storefront-backend/internal/models"
)

type ProductCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewProductCache(rdb *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ProductCache{rdb: rdb, ttl: ttl, prefix: "storefront:products"}
}

func (c *ProductCache) versionKey() string { return c.prefix + ":ver" }

func (c *ProductCache) listKey(ver int64, limit, offset int) string {
	return fmt.Sprintf("%s:list:%d:%d:%d", c.prefix, ver, limit, offset)
}

func (c *ProductCache) version(ctx context.Context) (int64, error) {
	v, err := c.rdb.Get(ctx, c.versionKey()).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// NoVersion is returned by GetList when the version could not be read;
// SetList ignores writes tagged with it.
const NoVersion int64 = -1

// GetList reports a miss on any Redis error. The returned version must be
// handed back to SetList so a page loaded before an Invalidate is filed
// under the old version and never read back.
func (c *ProductCache) GetList(ctx context.Context, limit, offset int) ([]models.Product, int64, bool) {
	ver, err := c.version(ctx)
	if err != nil {
		slog.Debug("product cache version", "err", err)
		return nil, NoVersion, false
	}
	b, err := c.rdb.Get(ctx, c.listKey(ver, limit, offset)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Debug("product cache get", "err", err)
		}
		return nil, ver, false
	}
	var out []models.Product
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, ver, false
	}
	return out, ver, true
}

func (c *ProductCache) SetList(ctx context.Context, ver int64, limit, offset int, items []models.Product) {
	if ver < 0 {
		return
	}
	b, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.listKey(ver, limit, offset), b, c.ttl).Err(); err != nil {
		slog.Debug("product cache set", "err", err)
	}
}

func (c *ProductCache) Invalidate(ctx context.Context) {
	if err := c.rdb.Incr(ctx, c.versionKey()).Err(); err != nil {
		slog.Warn("product cache invalidate", "err", err)
	}
}
