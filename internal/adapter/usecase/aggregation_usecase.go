package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// AggregationUseCase pulls one day of keyword metrics for every active
// campaign and stores keyword rows and campaign totals.
type AggregationUseCase struct {
	repo     port.PerformanceRepository
	source   port.MetricsSource
	lock     port.RunLock
	observer port.AggregationObserver
	logger   *slog.Logger
}

// NewAggregationUseCase wires the aggregator. lock and observer may be nil.
func NewAggregationUseCase(repo port.PerformanceRepository, source port.MetricsSource, lock port.RunLock, observer port.AggregationObserver, logger *slog.Logger) *AggregationUseCase {
	return &AggregationUseCase{repo: repo, source: source, lock: lock, observer: observer, logger: logger}
}

// RunDaily aggregates date, normally yesterday in UTC. Every source is
// queried before anything is written, so a failing source leaves the
// tables untouched and the next run retries the whole day.
func (u *AggregationUseCase) RunDaily(ctx context.Context, date time.Time) (report *domain.AggregationReport, err error) {
	started := time.Now()
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	report = &domain.AggregationReport{RunID: uuid.NewString(), Date: day}
	logger := u.logger.With(slog.String("run_id", report.RunID), slog.String("date", day.Format(time.DateOnly)))
	defer func() {
		if u.observer != nil {
			u.observer.ObserveAggregation(report, time.Since(started), err)
		}
	}()

	if u.lock != nil {
		key := "aggregate:" + day.Format(time.DateOnly)
		ok, lerr := u.lock.Acquire(ctx, key)
		if lerr != nil {
			return nil, fmt.Errorf("acquire run lock: %w", lerr)
		}
		if !ok {
			logger.Info("aggregation already running, skipping")
			report.Locked = true
			return report, nil
		}
		defer func() {
			if rerr := u.lock.Release(context.WithoutCancel(ctx), key); rerr != nil {
				logger.Warn("release run lock", slog.Any("error", rerr))
			}
		}()
	}

	targets, err := u.repo.ListSyncTargets(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}
	report.Campaigns = len(targets)

	var (
		rows        []domain.KeywordPerformance
		index       = make(map[int64]int)
		campaignIDs = make([]int64, 0, len(targets))
	)
	for _, t := range targets {
		campaignIDs = append(campaignIDs, t.Campaign.ID)

		raw, ferr := u.source.FetchKeywordMetrics(ctx, t.Account, t.Campaign, day)
		if errors.Is(ferr, port.ErrUnsupportedPlatform) {
			logger.Warn("no metrics source for campaign",
				slog.Int64("campaign_id", t.Campaign.ID),
				slog.String("platform", string(t.Account.Platform)),
				slog.Any("error", ferr),
			)
			report.SkippedCampaigns++
			continue
		}
		if ferr != nil {
			return nil, fmt.Errorf("fetch metrics for campaign %d: %w", t.Campaign.ID, ferr)
		}

		for _, r := range raw {
			report.RowsFetched++
			keywordID, ok := t.Keywords[r.PlatformKeywordID]
			if !ok {
				report.RowsUnmatched++
				continue
			}
			metrics, nerr := domain.NormalizeMetrics(r)
			if nerr != nil {
				logger.Warn("rejected metrics row",
					slog.Int64("campaign_id", t.Campaign.ID),
					slog.String("platform_keyword_id", r.PlatformKeywordID),
					slog.Any("error", nerr),
				)
				report.RowsRejected++
				continue
			}

			kp := domain.KeywordPerformance{KeywordID: keywordID, Date: day, Metrics: metrics}
			if i, dup := index[keywordID]; dup {
				rows[i] = kp
				continue
			}
			index[keywordID] = len(rows)
			rows = append(rows, kp)
		}
	}

	if err = u.repo.SaveDailyPerformance(ctx, day, rows, campaignIDs); err != nil {
		return nil, fmt.Errorf("save daily performance: %w", err)
	}
	report.RowsStored = len(rows)

	logger.Info("aggregation finished",
		slog.Int("campaigns", report.Campaigns),
		slog.Int("skipped_campaigns", report.SkippedCampaigns),
		slog.Int("rows_fetched", report.RowsFetched),
		slog.Int("rows_stored", report.RowsStored),
		slog.Int("rows_unmatched", report.RowsUnmatched),
		slog.Int("rows_rejected", report.RowsRejected),
		slog.Duration("elapsed", time.Since(started)),
	)
	return report, nil
}
