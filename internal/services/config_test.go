package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"STORE", "CACHE", "CACHE_TTL", "CACHE_SIZE", "INVALIDATION", "INVALIDATION_DEBOUNCE", "GRPC_PORT", "HTTP_PORT", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, StoreSpanner, cfg.Store)
	assert.Equal(t, CacheMemory, cfg.Cache)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.Equal(t, InvalidationNone, cfg.Invalidation)
	assert.Equal(t, time.Second, cfg.Debounce)
	assert.Equal(t, "9090", cfg.GRPCPort)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORE", "MySQL")
	t.Setenv("CACHE", "redis")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_SIZE", "12")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("INVALIDATION", "nats")
	t.Setenv("INVALIDATION_DEBOUNCE", "250ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg := LoadConfig()

	assert.Equal(t, StoreSQL, cfg.Store)
	assert.Equal(t, CacheRedis, cfg.Cache)
	assert.Equal(t, 90*time.Second, cfg.CacheTTL)
	assert.Equal(t, 12, cfg.CacheSize)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, InvalidationNATS, cfg.Invalidation)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoadConfig_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("CACHE_TTL", "ten minutes")
	t.Setenv("CACHE_SIZE", "lots")
	t.Setenv("INVALIDATION_DEBOUNCE", "-1s")

	cfg := LoadConfig()

	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.Equal(t, time.Second, cfg.Debounce)
}
