package commands_test

import (
	"context"
	"errors"
	"testing"

	"melodia/internal/core/application/usecases/commands"
	"melodia/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRemindPendingOffersCommandHandler_NotifiesEveryAwaitingOrder(t *testing.T) {
	ctx := context.Background()
	first := pendingOrder(t)
	second := pendingOrder(t)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllAwaitingOffer", ctx).Return([]*order.Order{first, second}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("NotifyPendingOffer", ctx, first.ComposerID(), first.ID(), first.Number()).Return(nil).Once()
	dispatcher.On("NotifyPendingOffer", ctx, second.ComposerID(), second.ID(), second.Number()).Return(nil).Once()

	handler := commands.NewRemindPendingOffersCommandHandler(factory, dispatcher)
	sent, err := handler.Handle(ctx, commands.NewRemindPendingOffersCommand())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	dispatcher.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemindPendingOffersCommandHandler_ContinuesPastDispatchFailure(t *testing.T) {
	ctx := context.Background()
	first := pendingOrder(t)
	second := pendingOrder(t)
	dispatchErr := errors.New("channel unavailable")

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllAwaitingOffer", ctx).Return([]*order.Order{first, second}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)
	dispatcher.On("NotifyPendingOffer", ctx, first.ComposerID(), first.ID(), first.Number()).
		Return(dispatchErr).Once()
	dispatcher.On("NotifyPendingOffer", ctx, second.ComposerID(), second.ID(), second.Number()).
		Return(nil).Once()

	handler := commands.NewRemindPendingOffersCommandHandler(factory, dispatcher)
	sent, err := handler.Handle(ctx, commands.NewRemindPendingOffersCommand())

	require.ErrorIs(t, err, dispatchErr)
	assert.Equal(t, 1, sent)
	dispatcher.AssertExpectations(t)
}

func TestRemindPendingOffersCommandHandler_NoAwaitingOrders(t *testing.T) {
	ctx := context.Background()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("GetAllAwaitingOffer", ctx).Return([]*order.Order{}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	dispatcher := new(MockNotificationDispatcher)

	handler := commands.NewRemindPendingOffersCommandHandler(factory, dispatcher)
	sent, err := handler.Handle(ctx, commands.NewRemindPendingOffersCommand())

	require.NoError(t, err)
	assert.Zero(t, sent)
	dispatcher.AssertNotCalled(t, "NotifyPendingOffer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
