package commands

import (
	"errors"
	"strings"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"
	"melodia/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrComposersAreRequired = errors.New("at least one composer is required")
)

// CreateOrderCommand represents a customer's request for a bespoke track,
// addressed to one or more composers. Handling fans out one independent
// order per composer; each negotiation then proceeds on its own.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, composerIDs, order.Details{
//	    Title:       "Epic orchestral trailer",
//	    Description: "Two minute orchestral trailer with a big finish",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	orderIDs, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	composerIDs []kernel.UUID
	details     order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to request a new custom order.
// Validates the customer, the composer list, and the content limits the
// aggregate enforces, so malformed requests fail before a transaction
// starts.
func NewCreateOrderCommand(customerID kernel.UUID, composerIDs []kernel.UUID, details order.Details) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerID(customerID),
		orderCommand.setComposerIDs(customerID, composerIDs),
		orderCommand.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the commissioning customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ComposerIDs returns the addressed composers, duplicates removed.
func (c CreateOrderCommand) ComposerIDs() []kernel.UUID {
	return c.composerIDs
}

// Details returns the customer-authored order content.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setComposerIDs(customerID kernel.UUID, composerIDs []kernel.UUID) error {
	if len(composerIDs) == 0 {
		return ErrComposersAreRequired
	}

	seen := make(map[kernel.UUID]bool, len(composerIDs))
	unique := make([]kernel.UUID, 0, len(composerIDs))
	for _, id := range composerIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if id.IsEqual(customerID) {
			return errs.NewValueIsInvalidError("composerIds must not contain the customer")
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	c.composerIDs = unique
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	if len(strings.TrimSpace(details.Title)) < order.MinTitleLength {
		return errs.NewValueIsInvalidError("title")
	}
	if len(strings.TrimSpace(details.Description)) < order.MinDescriptionLength {
		return errs.NewValueIsInvalidError("description")
	}

	c.details = details
	return nil
}
