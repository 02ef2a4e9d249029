package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentProgressionJob manages the scheduled progression of orders
// through the fulfillment pipeline. Runs every minute to move in-flight
// orders one stage forward.
type FulfillmentProgressionJob struct {
	handler commands.AdvanceFulfillmentCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFulfillmentProgressionJob creates a new job for advancing fulfillment.
// Uses AdvanceFulfillmentCommandHandler to progress orders every minute.
func NewFulfillmentProgressionJob(
	handler commands.AdvanceFulfillmentCommandHandler,
	logger *slog.Logger,
) *FulfillmentProgressionJob {
	return &FulfillmentProgressionJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "fulfillment_progression_job"),
	}
}

// Start begins the fulfillment progression job to run every minute.
func (j *FulfillmentProgressionJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAdvanceFulfillmentCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Fulfillment progression job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment progression job started (running every minute)")
	return nil
}

// Stop stops the fulfillment progression job.
func (j *FulfillmentProgressionJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fulfillment progression job stopped")
}
