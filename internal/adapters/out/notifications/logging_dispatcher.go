// Package notifications provides the default NotificationDispatcher
// adapter. Real delivery channels (mail, push) live with an external
// collaborator; this adapter records every notification in the log so the
// fan-out stays observable without one.
package notifications

import (
	"context"
	"log/slog"

	"melodia/internal/core/domain/model/kernel"
)

// LoggingDispatcher writes notifications to the structured log.
type LoggingDispatcher struct {
	logger *slog.Logger
}

// NewLoggingDispatcher creates a dispatcher that only logs.
func NewLoggingDispatcher(logger *slog.Logger) *LoggingDispatcher {
	return &LoggingDispatcher{
		logger: logger.With("component", "notification_dispatcher"),
	}
}

// NotifyPendingOffer logs a reminder for a composer with an open request.
func (d *LoggingDispatcher) NotifyPendingOffer(
	ctx context.Context, composerID, orderID kernel.UUID, orderNumber string,
) error {
	d.logger.InfoContext(ctx, "Offer reminder",
		"composer_id", composerID.String(),
		"order_id", orderID.String(),
		"order_number", orderNumber,
	)
	return nil
}
