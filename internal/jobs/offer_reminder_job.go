package jobs

import (
	"context"
	"log/slog"

	"melodia/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// offerReminderSchedule runs the reminder fan-out once an hour. Reminders
// change no state, so a missed run only delays the next nudge.
const offerReminderSchedule = "0 0 * * * *"

// OfferReminderJob periodically reminds composers of orders still waiting
// on their terms.
type OfferReminderJob struct {
	handler commands.RemindPendingOffersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferReminderJob creates a new job dispatching offer reminders.
func NewOfferReminderJob(handler commands.RemindPendingOffersCommandHandler, logger *slog.Logger) *OfferReminderJob {
	return &OfferReminderJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_reminder_job"),
	}
}

// Start begins the hourly reminder schedule.
func (j *OfferReminderJob) Start() error {
	_, err := j.cron.AddFunc(offerReminderSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRemindPendingOffersCommand()

		sent, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Offer reminder job failed", "error", handleErr, "sent", sent)
			return
		}
		if sent > 0 {
			j.logger.InfoContext(ctx, "Offer reminders dispatched", "sent", sent)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer reminder job started (running hourly)")
	return nil
}

// Stop stops the reminder job.
func (j *OfferReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer reminder job stopped")
}
