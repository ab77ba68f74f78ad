// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is the order refresh,
// which periodically pulls the remote order store into the local cache.
package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderRefreshJob *OrderRefreshJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(refresher Refresher, refreshSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		orderRefreshJob: NewOrderRefreshJob(refresher, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRefreshJob.Stop()
}
