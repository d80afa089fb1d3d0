package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"resto/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tableReleaseJob *TableReleaseJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	releaseTablesHandler commands.ReleaseTablesCommandHandler,
	tableReleaseGrace time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tableReleaseJob: NewTableReleaseJob(releaseTablesHandler, tableReleaseGrace, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tableReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start table release job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tableReleaseJob.Stop()
}
