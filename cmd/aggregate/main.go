// Command aggregate runs the daily performance aggregation once, for
// backfills and manual re-runs.
//
//	aggregate -date 2024-03-01 -fixture rows.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/stdlib"

	"adpilot/internal/adapter/platform"
	"adpilot/internal/adapter/postgres"
	"adpilot/internal/adapter/redis"
	"adpilot/internal/adapter/usecase"
	"adpilot/internal/config"
	"adpilot/internal/core/port"
	"adpilot/internal/db"
)

func main() {
	date := flag.String("date", "", "day to aggregate, YYYY-MM-DD (default yesterday, UTC)")
	days := flag.Int("days", 1, "number of consecutive days ending at -date to aggregate")
	fixture := flag.String("fixture", "", "YAML file of raw keyword rows used instead of the ad platform APIs")
	flag.Parse()

	cfg, err := config.LoadAggregate()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if *fixture != "" {
		cfg.GoogleAds.FixtureFile = *fixture
	}
	logger := config.NewLogger(os.Stderr, cfg.Log, cfg.Env)

	end := time.Now().UTC().AddDate(0, 0, -1)
	if *date != "" {
		if end, err = time.Parse(time.DateOnly, *date); err != nil {
			logger.Error("invalid -date", slog.Any("error", err))
			os.Exit(2)
		}
	}
	if *days < 1 {
		logger.Error("-days must be positive")
		os.Exit(2)
	}

	if err = run(cfg, end, *days, logger); err != nil {
		logger.Error("aggregation failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Aggregate, end time.Time, days int, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	var lock port.RunLock
	if cfg.Redis.Enabled() {
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("redis connection: %w", err)
		}
		defer rdb.Close()
		lock = redis.NewLock(rdb, cfg.Redis.Prefix, cfg.Redis.LockTTL)
	} else {
		sqlDB := stdlib.OpenDBFromPool(pool)
		defer sqlDB.Close()
		lock = postgres.NewAdvisoryLock(sqlDB)
	}

	source, err := platform.NewSource(cfg.GoogleAds, logger)
	if err != nil {
		return fmt.Errorf("metrics source: %w", err)
	}
	agg := usecase.NewAggregationUseCase(postgres.NewPerformanceRepository(pool), source, lock, nil, logger)

	for d := days - 1; d >= 0; d-- {
		report, err := agg.RunDaily(ctx, end.AddDate(0, 0, -d))
		if err != nil {
			return err
		}
		logger.Info("aggregated",
			slog.String("date", report.Date.Format(time.DateOnly)),
			slog.Int("campaigns", report.Campaigns),
			slog.Int("rows_fetched", report.RowsFetched),
			slog.Int("rows_stored", report.RowsStored),
			slog.Int("rows_unmatched", report.RowsUnmatched),
			slog.Int("rows_rejected", report.RowsRejected),
			slog.Bool("locked", report.Locked),
		)
	}
	return nil
}
