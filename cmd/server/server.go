package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	configuratorv1alpha1 "github.com/KirkDiggler/general-configurator/internal/api/configurator/v1alpha1"
	"github.com/KirkDiggler/general-configurator/internal/catalog"
	"github.com/KirkDiggler/general-configurator/internal/config"
	"github.com/KirkDiggler/general-configurator/internal/db"
	"github.com/KirkDiggler/general-configurator/internal/engine"
	"github.com/KirkDiggler/general-configurator/internal/handlers/configurator/v1alpha1"
	"github.com/KirkDiggler/general-configurator/internal/handlers/live"
	"github.com/KirkDiggler/general-configurator/internal/orchestrators/configurator"
	"github.com/KirkDiggler/general-configurator/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/general-configurator/internal/redis"
	"github.com/KirkDiggler/general-configurator/internal/repositories/builds"
)

var (
	grpcPort    int
	httpPort    int
	catalogPath string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the configurator gRPC server and the live websocket endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 8080, "Live websocket port, 0 disables it")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file, overrides the config")
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.Server.HTTPPort = httpPort
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}
	return cfg, cfg.Validate()
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := cfg.Log.NewLogger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("Catalog loaded",
		"path", cfg.Catalog.Path,
		"sets", len(cat.Sets()),
		"equipment", len(cat.Equipments()))

	eng, err := engine.New(&engine.Config{ExcludedTroops: cfg.Engine.Troops()})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	buildRepo, closeRepo, err := newBuildRepository(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create build repository: %w", err)
	}
	defer closeRepo()

	sampler, err := catalog.NewSampler(cat, nil)
	if err != nil {
		return fmt.Errorf("failed to create sampler: %w", err)
	}

	service, err := configurator.NewOrchestrator(&configurator.Config{
		Catalog:            cat,
		Engine:             eng,
		BuildRepo:          buildRepo,
		IDGenerator:        idgen.NewUUID("sess"),
		Sampler:            sampler,
		ComparisonCapacity: cfg.Comparison.Capacity,
		RecommendWorkers:   cfg.Engine.RecommendWorkers,
	})
	if err != nil {
		return fmt.Errorf("failed to create configurator service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		ConfiguratorService: service,
	})
	if err != nil {
		return fmt.Errorf("failed to create configurator handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	configuratorv1alpha1.RegisterConfiguratorServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(configuratorv1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	var httpSrv *http.Server
	if cfg.Server.HTTPPort > 0 {
		liveHandler, err := live.NewHandler(&live.HandlerConfig{Service: handler})
		if err != nil {
			return fmt.Errorf("failed to create live handler: %w", err)
		}
		mux := http.NewServeMux()
		mux.Handle("/ws", liveHandler)
		mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		httpSrv = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("gRPC server starting", "port", cfg.Server.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	})

	if httpSrv != nil {
		g.Go(func() error {
			logger.Info("Live endpoint starting", "port", cfg.Server.HTTPPort)
			if err := httpSrv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve http: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down servers...")
		healthServer.Shutdown()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if httpSrv != nil {
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				logger.Warn("Live endpoint shutdown failed", "error", err)
			}
		}

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("Server stopped gracefully")
		}
		return nil
	})

	return g.Wait()
}

// newBuildRepository opens the configured storage backend. The returned func
// releases its connections.
func newBuildRepository(ctx context.Context, cfg *config.Config) (builds.Repository, func(), error) {
	switch cfg.Storage.Backend {
	case config.StorageRedis:
		client, err := redisclient.Connect(cfg.Redis.MasterName, cfg.Redis.Endpoints, &redisclient.Options{
			PoolSize:     cfg.Redis.PoolSize,
			MinIdleConns: cfg.Redis.MinIdleConns,
			MaxRetries:   cfg.Redis.MaxRetries,
			UseTLS:       cfg.Redis.UseTLS,
		})
		if err != nil {
			return nil, nil, err
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		repo, err := builds.NewRedis(&builds.RedisConfig{Client: client})
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		slog.Info("Using redis build storage", "endpoints", cfg.Redis.Endpoints)
		return repo, func() { _ = client.Close() }, nil

	case config.StoragePostgres:
		dsn := cfg.Postgres.DSN()
		if cfg.Postgres.Migrate {
			if err := db.RunMigrations(ctx, dsn); err != nil {
				return nil, nil, err
			}
		}
		pool, err := db.Open(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		repo, err := builds.NewPostgres(&builds.PostgresConfig{DB: pool})
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		slog.Info("Using postgres build storage", "host", cfg.Postgres.Host, "dbname", cfg.Postgres.DBName)
		return repo, pool.Close, nil

	default:
		slog.Info("Using in-memory build storage")
		return builds.NewInMemory(), func() {}, nil
	}
}

// interceptorLogger adapts slog to the middleware logger
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(level), msg, fields...)
	})
}
