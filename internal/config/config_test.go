package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
env: local
pgsql:
  host: db
  dbname: creator
http_server:
  address: ":9090"
minio:
  public_base_url: https://clnass101.s3.amazonaws.com
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "db", cfg.PGSQL.Host)
	assert.Equal(t, "5432", cfg.PGSQL.Port)
	assert.Equal(t, ":9090", cfg.HTTPServer.Address)
	assert.Equal(t, "clnass101", cfg.MinIO.BucketName)
	assert.Equal(t, "https://clnass101.s3.amazonaws.com", cfg.MinIO.PublicBaseURL)
	assert.Contains(t, cfg.Media.AllowedMimeTypes, "image/png")
	assert.Equal(t, int64(30), cfg.RateLimit.Capacity)
	assert.Equal(t, 5*time.Minute, cfg.Cache.CatalogTTL)
	assert.Equal(t, 720*time.Hour, cfg.Sweeper.DraftTTL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestPQSQL_DSN(t *testing.T) {
	p := PQSQL{Host: "h", Port: "1", User: "u", Password: "p", DBName: "d", SSLMode: "disable"}
	assert.Equal(t, "host=h port=1 user=u password=p dbname=d sslmode=disable", p.DSN())
}
