package commands

import (
	"context"
	"time"

	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/services"
	"melodia/internal/pkg/errs"
)

// CreateInvoiceCommandHandler assembles and stores an invoice for a
// billable order. The invoice number is drawn from the per-year sequence
// inside the same transaction as the insert, so numbers stay gapless per
// committed invoice and sequential.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
	assembler  services.InvoiceAssembler
}

// NewCreateInvoiceCommandHandler creates a handler for invoice creation.
func NewCreateInvoiceCommandHandler(
	uowFactory InvoiceUoWFactory, assembler services.InvoiceAssembler,
) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{
		uowFactory: uowFactory,
		assembler:  assembler,
	}
}

// Handle assembles the invoice and returns its identifier. Only the
// order's customer may request it.
func (h *CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !o.CustomerID().IsEqual(cmd.CustomerID()) {
		return kernel.UUID{}, errs.NewForbiddenError(cmd.CustomerID().String(), "invoice this order")
	}

	invoiceRepo := uow.InvoiceRepository()
	number, err := invoiceRepo.NextNumber(ctx, time.Now().UTC().Year())
	if err != nil {
		return kernel.UUID{}, err
	}

	inv, err := h.assembler.AssembleForOrder(o, number)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return inv.ID(), nil
}
