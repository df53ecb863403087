package cache

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/clnass/creator-service/internal/utils/response"
)

// Stats describes the Redis instance backing the caches.
type Stats struct {
	RedisConnected bool          `json:"redis_connected"`
	CatalogCached  bool          `json:"catalog_cached"`
	CatalogTTL     time.Duration `json:"catalog_ttl_ns"`
	KeyCount       int64         `json:"total_keys"`
}

// GetCacheStats reports whether Redis is reachable and the catalog is cached.
func GetCacheStats(redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		stats := Stats{RedisConnected: true}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			stats.RedisConnected = false
			response.WriteJSON(w, http.StatusOK, stats)
			return
		}

		if ttl, err := redisClient.TTL(ctx, CatalogKey).Result(); err == nil && ttl > 0 {
			stats.CatalogCached = true
			stats.CatalogTTL = ttl
		}
		if n, err := redisClient.DBSize(ctx).Result(); err == nil {
			stats.KeyCount = n
		}

		response.WriteJSON(w, http.StatusOK, stats)
	}
}
