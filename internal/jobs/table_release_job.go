package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"resto/internal/core/application/usecases/commands"
	"resto/internal/pkg/errs"
)

// TableReleaseJob runs the delayed table auto-release sweep. It ticks
// every second so a settled table frees within about a second of its
// grace window elapsing.
type TableReleaseJob struct {
	handler commands.ReleaseTablesCommandHandler
	grace   time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTableReleaseJob creates the sweep job with the configured grace
// window between settlement and release.
func NewTableReleaseJob(
	handler commands.ReleaseTablesCommandHandler,
	grace time.Duration,
	logger *slog.Logger,
) *TableReleaseJob {
	return &TableReleaseJob{
		handler: handler,
		grace:   grace,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "table_release_job"),
	}
}

// Start begins the sweep, running every second.
func (j *TableReleaseJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewReleaseTablesCommand(time.Now(), j.grace)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Table release sweep could not build its command", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// A sweep losing a write race to a concurrent settlement is
			// routine; the next tick picks the order up again.
			if !errors.Is(handleErr, errs.ErrVersionIsInvalid) {
				j.logger.ErrorContext(ctx, "Table release sweep failed", "error", handleErr)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Table release job started (running every second)")
	return nil
}

// Stop stops the sweep.
func (j *TableReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Table release job stopped")
}
