package commands_test

import (
	"testing"

	"melodia/internal/core/application/usecases/commands"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("valid command", func(t *testing.T) {
		composers := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

		cmd, err := commands.NewCreateOrderCommand(customerID, composers, testDetails())
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Len(t, cmd.ComposerIDs(), 2)
	})

	t.Run("deduplicates composers", func(t *testing.T) {
		composerID := kernel.NewUUID()

		cmd, err := commands.NewCreateOrderCommand(
			customerID, []kernel.UUID{composerID, composerID}, testDetails())
		require.NoError(t, err)
		assert.Len(t, cmd.ComposerIDs(), 1)
	})

	t.Run("empty composer list", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(customerID, nil, testDetails())
		require.ErrorIs(t, err, commands.ErrComposersAreRequired)
	})

	t.Run("customer cannot address themselves", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			customerID, []kernel.UUID{customerID}, testDetails())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("short title", func(t *testing.T) {
		details := testDetails()
		details.Title = "Epic"

		_, err := commands.NewCreateOrderCommand(
			customerID, []kernel.UUID{kernel.NewUUID()}, details)
		require.Error(t, err)
	})

	t.Run("short description", func(t *testing.T) {
		details := testDetails()
		details.Description = "too short"

		_, err := commands.NewCreateOrderCommand(
			customerID, []kernel.UUID{kernel.NewUUID()}, details)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}

func TestCreateOrderCommandHandler_Handle_FansOutPerComposer(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}, testDetails())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	ids, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, ids, 2)
	assert.False(t, ids[0].IsEqual(ids[1]), "each composer gets an independent order")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_RetriesOnNumberCollision(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), []kernel.UUID{kernel.NewUUID()}, testDetails())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
			Return(errs.NewConflictError("number", "ORD-2026-0042")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	ids, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
