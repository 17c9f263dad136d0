package ports

import (
	"context"

	"melodia/internal/core/domain/model/kernel"
)

// NotificationDispatcher sends out-of-band notifications to marketplace
// users. Identity and delivery channels live outside this service; the
// default adapter only logs.
type NotificationDispatcher interface {
	// NotifyPendingOffer reminds a composer of an order awaiting their
	// offer.
	NotifyPendingOffer(ctx context.Context, composerID, orderID kernel.UUID, orderNumber string) error
}
