package services

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends.
const (
	StoreSpanner = "spanner"
	StoreSQL     = "mysql"
)

// Cache backends.
const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
	CacheNone   = "none"
)

// Invalidation transports.
const (
	InvalidationKafka = "kafka"
	InvalidationNATS  = "nats"
	InvalidationNone  = "none"
)

// Config holds application configuration.
type Config struct {
	Store     string
	SpannerDB string
	SQLDriver string
	MySQLDSN  string

	Cache         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	CacheSize     int

	Invalidation string
	KafkaBroker  string
	KafkaTopic   string
	KafkaGroup   string
	NATSURL      string
	NATSSubject  string
	Debounce     time.Duration

	GRPCPort       string
	HTTPPort       string
	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables with defaults.
// Malformed numbers and durations fall back to their defaults with a warning.
func LoadConfig() Config {
	return Config{
		Store:     strings.ToLower(getEnvOrDefault("STORE", StoreSpanner)),
		SpannerDB: getEnvOrDefault("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/shopcat-db"),
		SQLDriver: getEnvOrDefault("SQL_DRIVER", "mysql"),
		MySQLDSN:  getEnvOrDefault("MYSQL_DSN", "shopcat:shopcat@tcp(localhost:3306)/shopcat?parseTime=true"),

		Cache:         strings.ToLower(getEnvOrDefault("CACHE", CacheMemory)),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getIntOrDefault("REDIS_DB", 0),
		CacheTTL:      getDurationOrDefault("CACHE_TTL", 10*time.Minute),
		CacheSize:     getIntOrDefault("CACHE_SIZE", 1024),

		Invalidation: strings.ToLower(getEnvOrDefault("INVALIDATION", InvalidationNone)),
		KafkaBroker:  getEnvOrDefault("KAFKA_BROKER", "localhost:9092"),
		KafkaTopic:   getEnvOrDefault("KAFKA_TOPIC", "catalog.changes"),
		KafkaGroup:   getEnvOrDefault("KAFKA_GROUP", "shopcat-cache"),
		NATSURL:      getEnvOrDefault("NATS_URL", "nats://localhost:4222"),
		NATSSubject:  getEnvOrDefault("NATS_SUBJECT", "catalog.changes"),
		Debounce:     getDurationOrDefault("INVALIDATION_DEBOUNCE", time.Second),

		GRPCPort:       getEnvOrDefault("GRPC_PORT", "9090"),
		HTTPPort:       getEnvOrDefault("HTTP_PORT", "8080"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		LogLevel:  getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "json"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return v
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v < 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", raw, "default", defaultValue)
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
