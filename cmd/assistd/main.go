package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/trusttrack/assist/config"
	"github.com/trusttrack/assist/internal/api"
	"github.com/trusttrack/assist/internal/assemble"
	"github.com/trusttrack/assist/internal/classify"
	"github.com/trusttrack/assist/internal/directory"
	"github.com/trusttrack/assist/internal/logger"
	"github.com/trusttrack/assist/internal/metrics"
	middlewares "github.com/trusttrack/assist/internal/middleware"
	"github.com/trusttrack/assist/internal/rank"
	"github.com/trusttrack/assist/internal/ratelimit"
)

// Version information (set by build)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Local .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	logger.Info("Starting TrustTrack assist service",
		"version", Version,
		"build_time", BuildTime,
		"git_commit", GitCommit,
	)

	// Initialize metrics
	if cfg.Metrics.Enabled {
		metrics.Init()
		logger.Info("Metrics enabled", "port", cfg.Metrics.Port)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load the service catalog
	dir, err := directory.Load()
	if err != nil {
		logger.Fatal("Failed to load service directory", "error", err)
	}
	logger.Info("Service directory loaded",
		"region", dir.DefaultRegion(),
		"entries", len(dir.All()),
	)

	// Classification strategies: remote first when configured, local always
	heuristic := classify.NewHeuristic(dir.DefaultRegion())
	var remote classify.Classifier
	if cfg.AI.Enabled() {
		remote = classify.NewRemote(classify.RemoteConfig{
			Endpoint:   cfg.AI.Endpoint,
			APIKey:     cfg.AI.APIKey,
			Deployment: cfg.AI.Deployment,
			Timeout:    cfg.AI.Timeout,
		})
		logger.Info("Remote classifier enabled", "deployment", cfg.AI.Deployment)
	} else {
		logger.Info("Remote classifier disabled, using heuristic only")
	}
	chain := classify.NewChain(remote, heuristic)

	ranker := rank.New(dir)
	assembler := assemble.New(dir.DefaultRegion())

	// Setup HTTP server
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.Logging)
	r.Use(middlewares.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.ReadTimeout))
	r.Use(middlewares.Security)
	r.Use(middlewares.CORS(cfg.Server.AllowedOrigins))

	// Rate limiting: shared via Redis when configured, in-process otherwise
	if cfg.Redis.URL != "" {
		mgr, err := ratelimit.NewManager(cfg.Redis.URL, cfg.RateLimit.RequestsPerMinute)
		if err != nil {
			logger.Fatal("Failed to connect rate limiter", "error", err)
		}
		defer mgr.Close()
		r.Use(middlewares.RedisRateLimit(mgr))
		logger.Info("Redis rate limiting enabled", "rpm", mgr.RPM())
	} else {
		r.Use(middlewares.RateLimit(cfg.RateLimit.RequestsPerMinute))
		logger.Info("In-process rate limiting enabled", "rpm", cfg.RateLimit.RequestsPerMinute)
	}

	// Initialize API handlers
	apiHandler := api.NewHandler(chain, ranker, assembler, dir, Version, BuildTime, GitCommit)
	apiHandler.RegisterRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, metrics.Handler())
		metricsSrv = &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler: mux,
		}
		g.Go(func() error {
			logger.Info("Starting metrics server", "address", metricsSrv.Addr, "path", cfg.Metrics.Path)
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("metrics server: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()

		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", "error", err)
		}
		if metricsSrv != nil {
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				logger.Error("Metrics server forced to shutdown", "error", err)
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("Server error", "error", err)
	}

	logger.Info("Server exited")
}
