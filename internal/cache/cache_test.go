package cache

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clnass/creator-service/internal/types/creator"
)

type countingSource struct {
	calls   int
	catalog creator.Catalog
	err     error
}

func (s *countingSource) Catalog(context.Context) (creator.Catalog, error) {
	s.calls++
	return s.catalog, s.err
}

func sampleCatalog() creator.Catalog {
	return creator.Catalog{
		Categories: []creator.Category{{
			ID:            1,
			Name:          "크리에이티브",
			SubCategories: []creator.SubCategory{{ID: 11, Name: "데이터/개발"}},
		}},
		Difficulties: []creator.Difficulty{{ID: 1, Name: "초급자"}},
	}
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestCatalogCache_HitAfterMiss(t *testing.T) {
	mr, client := newRedis(t)
	src := &countingSource{catalog: sampleCatalog()}
	c := NewCatalogCache(src, client, time.Minute, nil)

	first, err := c.Catalog(context.Background())
	require.NoError(t, err)
	second, err := c.Catalog(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, sampleCatalog(), first)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(CatalogKey))
	assert.Equal(t, time.Minute, mr.TTL(CatalogKey))
}

func TestCatalogCache_ReloadsAfterExpiry(t *testing.T) {
	mr, client := newRedis(t)
	src := &countingSource{catalog: sampleCatalog()}
	c := NewCatalogCache(src, client, time.Minute, nil)

	_, err := c.Catalog(context.Background())
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	_, err = c.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, src.calls)
	assert.True(t, mr.Exists(CatalogKey))
	assert.Equal(t, time.Minute, mr.TTL(CatalogKey))
}

func TestCatalogCache_SourceError(t *testing.T) {
	mr, client := newRedis(t)
	src := &countingSource{err: errors.New("db down")}
	c := NewCatalogCache(src, client, 0, nil)

	_, err := c.Catalog(context.Background())
	assert.EqualError(t, err, "db down")
	assert.False(t, mr.Exists(CatalogKey))
}

func TestCatalogCache_RedisDown(t *testing.T) {
	mr, client := newRedis(t)
	mr.Close()
	src := &countingSource{catalog: sampleCatalog()}
	c := NewCatalogCache(src, client, time.Minute, nil)

	got, err := c.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog(), got)
}

func TestCatalogCache_IgnoresCorruptEntry(t *testing.T) {
	mr, client := newRedis(t)
	require.NoError(t, mr.Set(CatalogKey, "{not json"))
	src := &countingSource{catalog: sampleCatalog()}
	c := NewCatalogCache(src, client, time.Minute, nil)

	got, err := c.Catalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sampleCatalog(), got)
	assert.Equal(t, 1, src.calls)
}

func TestGetCacheStats(t *testing.T) {
	_, client := newRedis(t)
	c := NewCatalogCache(&countingSource{catalog: sampleCatalog()}, client, time.Minute, nil)
	_, err := c.Catalog(context.Background())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	GetCacheStats(client)(rec, httptest.NewRequest(http.MethodGet, "/debug/cache", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"redis_connected":true,"catalog_cached":true,"catalog_ttl_ns":60000000000,"total_keys":1}`, rec.Body.String())
}
