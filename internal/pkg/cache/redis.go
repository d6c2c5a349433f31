package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "shopcat"
	defaultTTL    = 10 * time.Minute
)

// client captures the subset of go-redis commands we rely on (for easier testing).
type client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisConfig describes how the Redis cache connects and names its keys.
type RedisConfig struct {
	// Client is used as is when set; otherwise one is created from Addr.
	Client   redis.UniversalClient
	Addr     string
	Username string
	Password string
	DB       int

	// Prefix namespaces every key, default "shopcat".
	Prefix string
	// TTL bounds how long an entry lives, default 10 minutes.
	TTL    time.Duration
	Logger *slog.Logger
}

// Redis stores entries under <prefix>:<generation>:<key>. Invalidate bumps
// the generation counter so every existing entry becomes unreachable at once
// and ages out through its TTL.
type Redis struct {
	client    client
	ownClient bool
	prefix    string
	ttl       time.Duration
	logger    *slog.Logger
	flight    loader
}

// NewRedis constructs a Redis-backed cache. No connection is made until first use.
func NewRedis(cfg RedisConfig) *Redis {
	var c client = cfg.Client
	ownClient := false
	if cfg.Client == nil {
		c = redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Username: cfg.Username,
			Password: cfg.Password,
			DB:       cfg.DB,
		})
		ownClient = true
	}

	return newRedis(c, ownClient, cfg)
}

func newRedis(c client, ownClient bool, cfg RedisConfig) *Redis {
	if cfg.Prefix == "" {
		cfg.Prefix = defaultPrefix
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultTTL
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Redis{
		client:    c,
		ownClient: ownClient,
		prefix:    cfg.Prefix,
		ttl:       cfg.TTL,
		logger:    cfg.Logger.With("component", "redis_cache"),
	}
}

// GetOrLoad returns the stored value for key or loads and stores it.
// When Redis cannot be reached the loader result is returned uncached.
func (r *Redis) GetOrLoad(ctx context.Context, key string, load LoadFunc) ([]byte, error) {
	// 1. Resolve the current generation
	gen, err := r.generation(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "cache unavailable, loading directly", "key", key, "error", err)
		return load(ctx)
	}

	// 2. Look the entry up
	entryKey := r.entryKey(gen, key)
	data, err := r.client.Get(ctx, entryKey).Bytes()
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, redis.Nil):
	default:
		r.logger.WarnContext(ctx, "cache read failed, loading directly", "key", key, "error", err)
		return load(ctx)
	}

	// 3. Load once per key and store the result
	return r.flight.do(ctx, entryKey, func(ctx context.Context) ([]byte, error) {
		data, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if err := r.client.Set(ctx, entryKey, data, r.ttl).Err(); err != nil {
			r.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
		}
		return data, nil
	})
}

// Invalidate makes every stored entry unreachable.
func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.client.Incr(ctx, r.generationKey()).Err(); err != nil {
		return fmt.Errorf("failed to bump cache generation: %w", err)
	}
	return nil
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}
	return nil
}

// Close releases the client if the cache created it.
func (r *Redis) Close() error {
	if !r.ownClient {
		return nil
	}
	return r.client.Close()
}

func (r *Redis) generation(ctx context.Context) (string, error) {
	gen, err := r.client.Get(ctx, r.generationKey()).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return gen, err
}

func (r *Redis) generationKey() string {
	return r.prefix + ":generation"
}

func (r *Redis) entryKey(gen, key string) string {
	return r.prefix + ":" + gen + ":" + key
}
