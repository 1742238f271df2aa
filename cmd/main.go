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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"adpilot/internal/adapter/gemini"
	httpadapter "adpilot/internal/adapter/http"
	"adpilot/internal/adapter/metrics"
	"adpilot/internal/adapter/platform"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/prompt"
	"adpilot/internal/adapter/redis"
	"adpilot/internal/adapter/scheduler"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/config/configs"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
)

// main loads configuration, optionally migrates and seeds the database,
// wires repositories, the metrics source, the text-generation gateway and
// the use cases, then serves HTTP and runs the daily aggregation schedule
// until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stdout, cfg.Log, cfg.Env)

	if err = run(cfg, logger); err != nil {
		logger.Error("adpilot stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String(), logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		userID, err := db.Seed(ctx, pool)
		if err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded", slog.Int64("user_id", userID))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metric := metrics.New("adpilot", reg)

	var (
		lock  port.RunLock
		cache gemini.Cache
	)
	if cfg.Redis.Enabled() {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		lock = redis.NewLock(rdb, cfg.Redis.Prefix, cfg.Redis.LockTTL)
		if cfg.Redis.CacheTTL > 0 {
			cache = redis.NewCache(rdb, cfg.Redis.Prefix, cfg.Redis.CacheTTL)
		}
	} else {
		sqlDB := stdlib.OpenDBFromPool(pool)
		defer sqlDB.Close()
		lock = postgres.NewAdvisoryLock(sqlDB)
	}

	source, err := platform.NewSource(cfg.GoogleAds, logger)
	if err != nil {
		return fmt.Errorf("metrics source: %w", err)
	}

	generatorOpts := []gemini.Option{gemini.WithObserver(metric), gemini.WithLogger(logger)}
	if cache != nil {
		generatorOpts = append(generatorOpts, gemini.WithCache(cache))
	}
	generator, err := gemini.New(cfg.Gemini, generatorOpts...)
	if err != nil {
		return err
	}
	prompts, err := prompt.NewBuilder()
	if err != nil {
		return err
	}

	svc := services(pool, source, lock, metric, generator, prompts, logger)

	if cfg.Scheduler.Enabled {
		sched, err := scheduler.New(ctx, cfg.Scheduler.Spec, svc.Aggregation, logger)
		if err != nil {
			return fmt.Errorf("scheduler spec %q: %w", cfg.Scheduler.Spec, err)
		}
		sched.Start()
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
			defer cancel()
			sched.Stop(stopCtx)
		}()
	}

	if cfg.HTTP.AdminToken == "" {
		logger.Info("admin routes disabled, HTTP_ADMIN_TOKEN is empty")
	}
	return serve(ctx, cfg.HTTP, httpadapter.NewHandler(svc, metric, cfg.HTTP.AdminToken, logger), logger)
}

func services(pool *pgxpool.Pool, source port.MetricsSource, lock port.RunLock, metric *metrics.Metrics,
	generator port.TextGenerator, prompts port.PromptBuilder, logger *slog.Logger,
) httpadapter.Services {
	accounts := postgres.NewAccountRepository(pool)
	profiles := postgres.NewProfileRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	perf := postgres.NewPerformanceRepository(pool)

	reports := usecase.NewReportUseCase(campaigns, perf)
	return httpadapter.Services{
		Accounts:        usecase.NewAccountUseCase(accounts, profiles),
		Campaigns:       usecase.NewCampaignUseCase(campaigns, accounts, profiles),
		Reports:         reports,
		Recommendations: usecase.NewRecommendationUseCase(reports, profiles, prompts, generator, logger),
		Aggregation:     usecase.NewAggregationUseCase(perf, source, lock, metric, logger),
	}
}

func serve(ctx context.Context, cfg configs.HTTP, handler *httpadapter.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}
