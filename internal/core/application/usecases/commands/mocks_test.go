package commands_test

import (
	"context"
	"errors"
	"testing"

	"melodia/internal/core/application/usecases/commands"
	"melodia/internal/core/domain/model/cart"
	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/invoice"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetHistory(_ context.Context, _ kernel.UUID) ([]order.HistoryEntry, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllByParticipant(_ context.Context, _ kernel.UUID) ([]*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockOrderRepository) GetAllAwaitingOffer(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Add(ctx context.Context, item *cart.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCartRepository) Update(ctx context.Context, item *cart.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockCartRepository) Get(ctx context.Context, id kernel.UUID) (*cart.CartItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}
func (m *MockCartRepository) GetAllByUser(_ context.Context, _ kernel.UUID) ([]*cart.CartItem, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockCartRepository) FindBySubject(ctx context.Context, userID kernel.UUID, trackID, orderID *kernel.UUID) (*cart.CartItem, error) {
	args := m.Called(ctx, userID, trackID, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.CartItem), args.Error(1)
}
func (m *MockCartRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCartRepository) DeleteAllByOrder(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockInvoiceRepository struct{ mock.Mock }

func (m *MockInvoiceRepository) Add(ctx context.Context, inv *invoice.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInvoiceRepository) Get(_ context.Context, _ kernel.UUID) (*invoice.Invoice, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockInvoiceRepository) GetAllByCustomer(_ context.Context, _ kernel.UUID) ([]*invoice.Invoice, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockInvoiceRepository) NextNumber(ctx context.Context, year int) (string, error) {
	args := m.Called(ctx, year)
	return args.String(0), args.Error(1)
}

type MockTrackRepository struct{ mock.Mock }

func (m *MockTrackRepository) Add(ctx context.Context, track *catalog.Track) error {
	args := m.Called(ctx, track)
	return args.Error(0)
}
func (m *MockTrackRepository) Update(ctx context.Context, track *catalog.Track) error {
	args := m.Called(ctx, track)
	return args.Error(0)
}
func (m *MockTrackRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Track, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Track), args.Error(1)
}

// MockUoW satisfies every unit of work shape the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}
func (m *MockUoW) InvoiceRepository() ports.InvoiceRepository {
	args := m.Called()
	return args.Get(0).(ports.InvoiceRepository)
}
func (m *MockUoW) TrackRepository() ports.TrackRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackRepository)
}

type MockNotificationDispatcher struct{ mock.Mock }

func (m *MockNotificationDispatcher) NotifyPendingOffer(
	ctx context.Context, composerID, orderID kernel.UUID, orderNumber string,
) error {
	args := m.Called(ctx, composerID, orderID, orderNumber)
	return args.Error(0)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderCartUoWFactory struct{ mock.Mock }

func (m *MockOrderCartUoWFactory) Create() commands.OrderCartUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderCartUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockInvoiceUoWFactory struct{ mock.Mock }

func (m *MockInvoiceUoWFactory) Create() commands.InvoiceUoW {
	args := m.Called()
	return args.Get(0).(commands.InvoiceUoW)
}

// Test fixtures shared across handler tests.

func testDetails() order.Details {
	return order.Details{
		Title:       "Epic orchestral trailer",
		Description: "Two minute orchestral trailer track with a slow build and a big finish",
	}
}

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "ORD-2026-0042", kernel.NewUUID(), kernel.NewUUID(), testDetails())
	require.NoError(t, err)
	return o
}

func offeredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	price, err := kernel.MoneyFromString("450.00")
	require.NoError(t, err)
	require.NoError(t, o.SubmitOffer(o.ComposerID(), price, 10, 3, ""))
	return o
}

func deliveredOrder(t *testing.T) *order.Order {
	t.Helper()
	o := offeredOrder(t)
	require.NoError(t, o.AcceptOffer(o.CustomerID()))
	require.NoError(t, o.Deliver(o.ComposerID(), "https://cdn.example.com/v1.mp3", ""))
	return o
}

func completedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := deliveredOrder(t)
	require.NoError(t, o.Complete(o.CustomerID()))
	return o
}
