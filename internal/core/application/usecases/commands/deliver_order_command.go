package commands

import (
	"errors"
	"strings"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
	"melodia/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents the composer handing over a finished or
// preview track.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	composerID kernel.UUID
	musicURL   string
	message    string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to deliver a track. The music
// URL is required; the message is optional.
func NewDeliverOrderCommand(orderID, composerID kernel.UUID, musicURL, message string) (DeliverOrderCommand, error) {
	if err := errors.Join(orderID.Validate(), composerID.Validate()); err != nil {
		return DeliverOrderCommand{}, err
	}
	if strings.TrimSpace(musicURL) == "" {
		return DeliverOrderCommand{}, errs.NewValueIsRequiredError("musicUrl")
	}

	return DeliverOrderCommand{
		orderID:    orderID,
		composerID: composerID,
		musicURL:   musicURL,
		message:    message,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c DeliverOrderCommand) OrderID() kernel.UUID { return c.orderID }

// ComposerID returns the delivering composer.
func (c DeliverOrderCommand) ComposerID() kernel.UUID { return c.composerID }

// MusicURL returns the delivered track reference.
func (c DeliverOrderCommand) MusicURL() string { return c.musicURL }

// Message returns the optional delivery note.
func (c DeliverOrderCommand) Message() string { return c.message }
