package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/nats-io/nats.go"

	"github.com/light-bringer/shopcat-service/internal/app/catalog/contracts"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/invalidation"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/get_product"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_categories"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/queries/list_products"
	"github.com/light-bringer/shopcat-service/internal/app/catalog/repo"
	"github.com/light-bringer/shopcat-service/internal/pkg/cache"
	"github.com/light-bringer/shopcat-service/internal/pkg/clock"
	"github.com/light-bringer/shopcat-service/internal/transport/grpc/catalog"
	httptransport "github.com/light-bringer/shopcat-service/internal/transport/http"
)

// catalogSource is implemented by every data source backend.
type catalogSource interface {
	contracts.ProductSource
	contracts.CategorySource
}

type cacheWithClose interface {
	contracts.ResultCache
	Close() error
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient *spanner.Client
	DB            *sql.DB
	Cache         contracts.ResultCache

	// Listener is nil when invalidation is disabled.
	Listener *invalidation.Listener

	CatalogHandler *catalog.Handler
	HTTPHandler    *httptransport.CatalogHandler

	natsConn *nats.Conn
	source   invalidation.Source
	logger   *slog.Logger
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config, logger *slog.Logger) (*ServiceOptions, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := &ServiceOptions{logger: logger}

	// 1. Initialize the data source
	source, err := opts.openSource(ctx, cfg)
	if err != nil {
		opts.Close()
		return nil, err
	}

	// 2. Create the result cache
	opts.Cache = newCache(ctx, cfg, logger)

	// 3. Create query use cases
	listProductsQuery := list_products.NewQuery(source, opts.Cache)
	getProductQuery := get_product.NewQuery(source)
	listCategoriesQuery := list_categories.NewQuery(source, opts.Cache)

	// 4. Create transport handlers
	opts.CatalogHandler = catalog.NewHandler(listProductsQuery, getProductQuery, listCategoriesQuery, logger)
	opts.HTTPHandler = httptransport.NewCatalogHandler(listProductsQuery, getProductQuery, listCategoriesQuery, logger)

	// 5. Create the invalidation listener
	if err := opts.openListener(cfg); err != nil {
		opts.Close()
		return nil, err
	}

	return opts, nil
}

func (s *ServiceOptions) openSource(ctx context.Context, cfg Config) (catalogSource, error) {
	switch cfg.Store {
	case StoreSpanner:
		client, err := spanner.NewClient(ctx, cfg.SpannerDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		s.SpannerClient = client
		return repo.NewSpannerSource(client), nil

	case StoreSQL:
		db, err := repo.OpenSQL(ctx, cfg.SQLDriver, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		s.DB = db
		return repo.NewSQLSource(db), nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

func newCache(ctx context.Context, cfg Config, logger *slog.Logger) contracts.ResultCache {
	switch cfg.Cache {
	case CacheRedis:
		c := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
			Logger:   logger,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := c.Ping(pingCtx); err != nil {
			logger.Warn("redis not reachable at startup, requests will bypass the cache until it is", "addr", cfg.RedisAddr, "error", err)
		}
		return c

	case CacheNone:
		return cache.NewNoop()

	default:
		if cfg.Cache != CacheMemory {
			logger.Warn("unknown cache backend, using memory", "cache", cfg.Cache)
		}
		return cache.NewMemory(cfg.CacheSize, cfg.CacheTTL)
	}
}

func (s *ServiceOptions) openListener(cfg Config) error {
	switch cfg.Invalidation {
	case InvalidationKafka:
		s.source = invalidation.NewKafkaSource(invalidation.KafkaConfig{
			Broker:  cfg.KafkaBroker,
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.KafkaGroup,
		})

	case InvalidationNATS:
		conn, err := invalidation.ConnectNATS(cfg.NATSURL)
		if err != nil {
			return err
		}
		s.natsConn = conn

		source, err := invalidation.NewNATSSource(conn, cfg.NATSSubject)
		if err != nil {
			return err
		}
		s.source = source

	case InvalidationNone, "":
		return nil

	default:
		return fmt.Errorf("unknown invalidation transport %q", cfg.Invalidation)
	}

	s.Listener = invalidation.NewListener(s.source, s.Cache, invalidation.ListenerConfig{
		Debounce: cfg.Debounce,
		Clock:    clock.NewRealClock(),
		Logger:   s.logger,
	})
	return nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.source != nil {
		if err := s.source.Close(); err != nil {
			s.logger.Warn("failed to close change source", "error", err)
		}
	}
	if s.natsConn != nil {
		s.natsConn.Close()
	}
	if c, ok := s.Cache.(cacheWithClose); ok {
		if err := c.Close(); err != nil {
			s.logger.Warn("failed to close cache", "error", err)
		}
	}
	if s.DB != nil {
		if err := s.DB.Close(); err != nil {
			s.logger.Warn("failed to close database", "error", err)
		}
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
