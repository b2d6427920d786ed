package jobs

import (
	"context"
	"log/slog"
	"time"

	"dragontea/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// staleSweepSchedule runs the sweep once a minute. Stale orders are measured
// in tens of minutes, so a finer schedule buys nothing.
const staleSweepSchedule = "0 * * * * *"

// StaleOrderCancellationJob periodically cancels orders that sat unpaid past
// their time to live. An abandoned invoice otherwise leaves a pending order
// in the staff view forever.
type StaleOrderCancellationJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates the sweep job.
// ttl is how long a pending order may stay unpaid before it is canceled.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the sweep on its schedule.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc(staleSweepSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewCancelStaleOrdersCommand(j.ttl)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started",
		"ttl", j.ttl.String())
	return nil
}

// Stop stops the sweep.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}
