package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/shopcat-service/internal/pkg/logging"
	"github.com/light-bringer/shopcat-service/internal/services"
	"github.com/light-bringer/shopcat-service/internal/transport/grpc/catalog"
	httptransport "github.com/light-bringer/shopcat-service/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("failed to run server", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load configuration from environment variables
	config := services.LoadConfig()
	logger := logging.Setup(os.Stdout, config.LogLevel, config.LogFormat)

	logger.Info("starting catalog service",
		"store", config.Store,
		"cache", config.Cache,
		"invalidation", config.Invalidation,
		"grpc_port", config.GRPCPort,
		"http_port", config.HTTPPort,
	)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, config, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC server and register services
	grpcServer := grpc.NewServer()
	catalog.RegisterCatalogQueryServer(grpcServer, serviceOpts.CatalogHandler)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(catalog.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// 4. Enable reflection (for grpcurl and debugging)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+config.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	errCh := make(chan error, 3)

	// 5. Start gRPC server in background
	go func() {
		logger.Info("gRPC server listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("gRPC server: %w", err)
		}
	}()

	// 6. Start HTTP server in background
	httpServer := &http.Server{
		Addr: ":" + config.HTTPPort,
		Handler: httptransport.NewRouter(serviceOpts.HTTPHandler, httptransport.RouterConfig{
			AllowedOrigins: config.AllowedOrigins,
			Logger:         logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", err)
		}
	}()

	// 7. Start the cache invalidation listener
	listenerDone := make(chan struct{})
	if serviceOpts.Listener != nil {
		go func() {
			defer close(listenerDone)
			if err := serviceOpts.Listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- fmt.Errorf("invalidation listener: %w", err)
			}
		}()
	} else {
		close(listenerDone)
	}

	// 8. Graceful shutdown handling
	select {
	case <-ctx.Done():
		logger.Info("shutting down gracefully")
	case err = <-errCh:
		logger.Error("component failed, shutting down", "error", err)
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	healthServer.Shutdown()
	if shutdownErr := httpServer.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Warn("HTTP server shutdown error", "error", shutdownErr)
	}
	grpcServer.GracefulStop()
	<-listenerDone

	return err
}
