package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCanceller cancels pending orders created before a cutoff.
type StaleOrderCanceller interface {
	Handle(ctx context.Context, cmd commands.CancelStaleOrdersCommand) (int, error)
}

// StaleOrderJob cancels customer orders that nobody accepted within maxAge.
type StaleOrderJob struct {
	handler  StaleOrderCanceller
	maxAge   time.Duration
	schedule string
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewStaleOrderJob(
	handler StaleOrderCanceller,
	maxAge time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleOrderJob {
	return &StaleOrderJob{
		handler:  handler,
		maxAge:   maxAge,
		schedule: schedule,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "stale_order_job"),
	}
}

// Start schedules the job.
func (j *StaleOrderJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stale order job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order job started",
		"schedule", j.schedule, "max_age", j.maxAge.String())
	return nil
}

// Run performs one pass.
func (j *StaleOrderJob) Run(ctx context.Context) error {
	cmd, err := commands.NewCancelStaleOrdersCommand(j.now().Add(-j.maxAge))
	if err != nil {
		return err
	}

	cancelled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return err
	}

	if cancelled > 0 {
		j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled, "cutoff", cmd.Cutoff())
	}
	return nil
}

// Stop stops the stale order job.
func (j *StaleOrderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale order job stopped")
}
