package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"adpilot/internal/core/port"
)

// Scheduler runs the daily aggregation for the previous UTC day on a cron
// schedule. Overlapping firings are skipped.
type Scheduler struct {
	cron   *cron.Cron
	agg    port.AggregationUseCase
	logger *slog.Logger
	now    func() time.Time
}

// New parses spec, a five-field cron expression evaluated in UTC.
func New(ctx context.Context, spec string, agg port.AggregationUseCase, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		agg:    agg,
		logger: logger,
		now:    time.Now,
	}
	if _, err := s.cron.AddFunc(spec, func() { s.RunYesterday(ctx) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("aggregation scheduler started", slog.Time("next", s.cron.Entries()[0].Next))
}

// Stop stops the schedule and waits for a running aggregation to finish or
// ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("aggregation still running at shutdown")
	}
}

// RunYesterday aggregates the day before now in UTC. Failures are logged;
// the next firing retries.
func (s *Scheduler) RunYesterday(ctx context.Context) {
	date := s.now().UTC().AddDate(0, 0, -1)
	report, err := s.agg.RunDaily(ctx, date)
	if err != nil {
		s.logger.Error("scheduled aggregation failed",
			slog.String("date", date.Format(time.DateOnly)),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Info("scheduled aggregation finished",
		slog.String("run_id", report.RunID),
		slog.String("date", report.Date.Format(time.DateOnly)),
		slog.Int("rows_stored", report.RowsStored),
		slog.Bool("locked", report.Locked),
	)
}

// cronLogger routes cron's own messages to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
