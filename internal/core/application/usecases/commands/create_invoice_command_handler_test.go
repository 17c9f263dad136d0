package commands_test

import (
	"testing"

	"melodia/internal/core/application/usecases/commands"
	"melodia/internal/core/domain/model/invoice"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/services"
	"melodia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInvoiceAssembler() services.InvoiceAssembler {
	return services.NewInvoiceAssembler(services.NewLicensePricingEngine())
}

func TestCreateInvoiceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := deliveredOrder(t)
	cmd, err := commands.NewCreateInvoiceCommand(o.ID(), o.CustomerID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("NextNumber", mock.Anything, mock.AnythingOfType("int")).
			Return("INV-2026-00007", nil).Once(),
		invoiceRepo.On("Add", mock.Anything, mock.MatchedBy(func(inv *invoice.Invoice) bool {
			return inv.Number() == "INV-2026-00007" && inv.Total().String() == "535.50"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, newInvoiceAssembler())
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NoError(t, id.Validate())
	invoiceRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestCreateInvoiceCommandHandler_Handle_ForeignCustomerIsForbidden(t *testing.T) {
	ctx := t.Context()
	o := deliveredOrder(t)
	stranger := kernel.NewUUID()
	cmd, err := commands.NewCreateInvoiceCommand(o.ID(), stranger)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, newInvoiceAssembler())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCreateInvoiceCommandHandler_Handle_PendingOrderIsNotBillable(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t)
	cmd, err := commands.NewCreateInvoiceCommand(o.ID(), o.CustomerID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("InvoiceRepository").Return(invoiceRepo).Once(),
		invoiceRepo.On("NextNumber", mock.Anything, mock.AnythingOfType("int")).
			Return("INV-2026-00008", nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateInvoiceCommandHandler(factory, newInvoiceAssembler())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	invoiceRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
