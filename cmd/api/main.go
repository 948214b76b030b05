// Package main is the entry point for the WanderWise API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"

	"github.com/pkordes/wanderwise/backend/internal/config"
	"github.com/pkordes/wanderwise/backend/internal/controller"
	"github.com/pkordes/wanderwise/backend/internal/handler"
	"github.com/pkordes/wanderwise/backend/internal/metrics"
	"github.com/pkordes/wanderwise/backend/internal/middleware"
	"github.com/pkordes/wanderwise/backend/internal/registry"
	"github.com/pkordes/wanderwise/backend/internal/repo"
	"github.com/pkordes/wanderwise/backend/internal/service"
	"github.com/pkordes/wanderwise/backend/migrations"
	"github.com/pkordes/wanderwise/backend/spec"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Metrics ----------------------------------------------------------
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// --- Storage ----------------------------------------------------------
	var pool *pgxpool.Pool
	if cfg.NeedsPostgres() {
		pool, err = openPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to set up database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		slog.Info("database connection established")
	}

	var kv repo.KVStore
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		kv = repo.NewPostgresKVStore(pool)
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer client.Close()
		if err := client.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect to redis", "addr", cfg.RedisAddr, "error", err)
			os.Exit(1)
		}
		kv = repo.NewRedisKVStore(client, "wanderwise:")
		slog.Info("redis connection established", "addr", cfg.RedisAddr)
	default:
		kv = repo.NewMemoryKVStore()
	}

	var dests repo.DestinationRepo
	if cfg.DestinationSource == config.SourcePostgres {
		dests = repo.NewDestinationRepo(pool)
	} else {
		dests = registry.MustBaguio()
	}
	slog.Info("storage ready", "store_backend", cfg.StoreBackend, "destination_source", cfg.DestinationSource)

	// --- Services ---------------------------------------------------------
	comments := repo.NewCommentRepo(kv, time.Now, logger)
	mapSvc := service.NewMapService(registry.BaguioMap(), dests, comments, time.Now)
	commentSvc := service.NewCommentService(dests, comments, m)
	prefSvc := service.NewPreferenceService(repo.NewPreferenceRepo(kv, logger))

	sessions := controller.NewSessions(mapSvc, commentSvc, prefSvc, m,
		controller.LogListener(logger),
		controller.MetricsListener(m),
	)
	go sessions.RunPruner(ctx, time.Minute, cfg.SessionIdleTimeout, func(n int) {
		slog.Info("pruned idle sessions", "count", n)
	})

	limiter := middleware.NewRateLimiter(cfg.CommentRatePerSec, cfg.CommentBurst, func(r *http.Request) {
		m.Limited("comments")
	})
	go func() {
		t := time.NewTicker(5 * time.Minute)
		defer t.Stop()
		for {
			select {
			case <-t.C:
				limiter.Prune(10 * time.Minute)
			case <-ctx.Done():
				return
			}
		}
	}()

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body cap. RealIP must run before the comment limiter so
	// clients are keyed by their forwarded address.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	srvHandler := handler.NewServer(mapSvc, commentSvc, prefSvc, sessions,
		handler.WithLogger(logger),
		handler.WithMetrics(m),
		handler.WithCommentLimiter(limiter.Handler),
		handler.WithOpenAPI(spec.OpenAPI),
	)
	r.Mount("/", srvHandler.Routes())

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openPostgres connects a pool, verifies the database is reachable and
// applies pending migrations before the server accepts traffic.
func openPostgres(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	// goose needs database/sql, so borrow a *sql.DB view of the pool.
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return pool, nil
}
