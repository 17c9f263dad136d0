package commands

import (
	"errors"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"
	"melodia/internal/pkg/guard"
)

var ErrSubmitOfferCommandIsNotConstructed = errors.New(
	"SubmitOfferCommand must be created via NewSubmitOfferCommand constructor",
)

// SubmitOfferCommand represents a composer's terms for a custom order:
// price, production time, and the included revision count.
type SubmitOfferCommand struct { //nolint:recvcheck //using for validation
	orderID           kernel.UUID
	composerID        kernel.UUID
	price             kernel.Money
	productionDays    int
	includedRevisions int
	message           string

	guard guard.ConstructorGuard
}

// NewSubmitOfferCommand creates a command carrying the composer's offer.
// Price and production days must be positive; included revisions must not
// be negative.
func NewSubmitOfferCommand(
	orderID, composerID kernel.UUID, price kernel.Money, productionDays, includedRevisions int, message string,
) (SubmitOfferCommand, error) {
	cmd := SubmitOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		composerID.Validate(),
		cmd.setTerms(price, productionDays, includedRevisions),
	); err != nil {
		return SubmitOfferCommand{}, err
	}

	cmd.orderID = orderID
	cmd.composerID = composerID
	cmd.message = message
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOfferCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOfferCommandIsNotConstructed)
}

// OrderID returns the order being offered on.
func (c SubmitOfferCommand) OrderID() kernel.UUID { return c.orderID }

// ComposerID returns the offering composer.
func (c SubmitOfferCommand) ComposerID() kernel.UUID { return c.composerID }

// Price returns the offered price.
func (c SubmitOfferCommand) Price() kernel.Money { return c.price }

// ProductionDays returns the offered production time in days.
func (c SubmitOfferCommand) ProductionDays() int { return c.productionDays }

// IncludedRevisions returns the offered revision count.
func (c SubmitOfferCommand) IncludedRevisions() int { return c.includedRevisions }

// Message returns the optional note accompanying the offer.
func (c SubmitOfferCommand) Message() string { return c.message }

func (c *SubmitOfferCommand) setTerms(price kernel.Money, productionDays, includedRevisions int) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidError("price must be positive")
	}
	if productionDays <= 0 {
		return errs.NewValueIsInvalidError("productionDays must be positive")
	}
	if includedRevisions < 0 {
		return errs.NewValueIsInvalidError("includedRevisions must not be negative")
	}

	c.price = price
	c.productionDays = productionDays
	c.includedRevisions = includedRevisions
	return nil
}
