package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/clnass/creator-service/internal/types/creator"
)

// CatalogKey holds the serialized category and difficulty tree.
const CatalogKey = "creator:catalog"

const DefaultCatalogTTL = 5 * time.Minute

// CatalogSource is the uncached catalog reader.
type CatalogSource interface {
	Catalog(ctx context.Context) (creator.Catalog, error)
}

// CatalogCache keeps the stage-1 catalog in Redis. Redis failures fall back
// to the source.
type CatalogCache struct {
	source CatalogSource
	redis  *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewCatalogCache(source CatalogSource, redisClient *redis.Client, ttl time.Duration, log *slog.Logger) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	if log == nil {
		log = slog.Default()
	}
	return &CatalogCache{source: source, redis: redisClient, ttl: ttl, log: log}
}

// Catalog returns the cached catalog or loads and caches it.
func (c *CatalogCache) Catalog(ctx context.Context) (creator.Catalog, error) {
	cached, err := c.redis.Get(ctx, CatalogKey).Bytes()
	if err == nil {
		var catalog creator.Catalog
		if err := json.Unmarshal(cached, &catalog); err == nil {
			return catalog, nil
		}
	} else if err != redis.Nil {
		c.log.Warn("catalog cache read failed", slog.String("error", err.Error()))
	}

	catalog, err := c.source.Catalog(ctx)
	if err != nil {
		return creator.Catalog{}, err
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		c.log.Warn("catalog cache encode failed", slog.String("error", err.Error()))
		return catalog, nil
	}
	if err := c.redis.Set(ctx, CatalogKey, data, c.ttl).Err(); err != nil {
		c.log.Warn("catalog cache write failed", slog.String("error", err.Error()))
	}
	return catalog, nil
}
