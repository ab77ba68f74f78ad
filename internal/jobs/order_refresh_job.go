package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Refresher re-reads the remote order store into the local cache.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// OrderRefreshJob keeps the order cache in step with the remote store.
// The remote store is the source of truth; role queues and the history
// view are projections of whatever the last successful refresh brought in.
type OrderRefreshJob struct {
	refresher Refresher
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrderRefreshJob creates a job that refreshes the order cache on the
// given cron schedule (with a seconds field).
func NewOrderRefreshJob(refresher Refresher, schedule string, logger *slog.Logger) *OrderRefreshJob {
	return &OrderRefreshJob{
		refresher: refresher,
		schedule:  schedule,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "order_refresh_job"),
	}
}

// Start begins the periodic refresh.
// A failed refresh is logged and retried on the next tick; the cache keeps
// serving the last good snapshot in between.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.refresher.Refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order refresh failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the refresh job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}
