package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"melodia/internal/adapters/out/postgres/orderrepo"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// OrderRepository using PostgreSQL containers to verify persistence,
// the status guard on updates and the audit trail flush.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.HistoryEntryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_RoundTrips() {
	ctx := context.Background()

	budget := mustMoney(suite, "300.00")
	testOrder := suite.newOrder("ORD-2026-0001", order.Details{
		Title:           "Epic trailer cue",
		Description:     "Two minute orchestral trailer cue with a big finish",
		Requirements:    "120 BPM, full orchestra",
		ReferenceLinks:  "https://example.com/reference",
		Notes:           "Needed by end of month",
		RequestedBudget: &budget,
		PaymentModel:    order.PartialPayment,
	})

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restored.ID())
	suite.Equal("ORD-2026-0001", restored.Number())
	suite.Equal(testOrder.CustomerID(), restored.CustomerID())
	suite.Equal(testOrder.ComposerID(), restored.ComposerID())
	suite.Equal("Epic trailer cue", restored.Title())
	suite.Equal(order.PartialPayment, restored.PaymentModel())
	suite.Equal(order.Pending, restored.Status())
	suite.Equal(order.Pending, restored.LoadedStatus())
	suite.Require().NotNil(restored.RequestedBudget())
	suite.Equal("300.00", restored.RequestedBudget().String())
	suite.Nil(restored.OfferedPrice())

	// Creation is not a transition, so no audit entries exist yet.
	history, err := suite.repository.GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(history)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConflictError() {
	ctx := context.Background()

	first := suite.newOrder("ORD-2026-0002", suite.defaultDetails())
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second := suite.newOrder("ORD-2026-0002", suite.defaultDetails())
	err := suite.repository.Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_FlushesPendingHistory() {
	ctx := context.Background()

	testOrder := suite.newOrder("ORD-2026-0003", suite.defaultDetails())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	price := mustMoney(suite, "450.00")
	suite.Require().NoError(loaded.SubmitOffer(loaded.ComposerID(), price, 10, 3, "Happy to take this on"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	loaded, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AcceptOffer(loaded.CustomerID()))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OfferAccepted, restored.Status())
	suite.Require().NotNil(restored.OfferedPrice())
	suite.Equal("450.00", restored.OfferedPrice().String())
	suite.Equal(3, restored.RevisionBudget().Included())
	suite.NotNil(restored.OfferAcceptedAt())

	history, err := suite.repository.GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(order.OfferPending, history[0].Status())
	suite.Equal(order.OfferAccepted, history[1].Status())
	suite.Contains(history[0].Message(), "450.00")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ConcurrentTransition_ReturnsConflictError() {
	ctx := context.Background()

	testOrder := suite.newOrder("ORD-2026-0004", suite.defaultDetails())
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two sessions load the same pending order.
	sessionA, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	sessionB, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	price := mustMoney(suite, "450.00")
	suite.Require().NoError(sessionA.SubmitOffer(sessionA.ComposerID(), price, 10, 3, ""))
	suite.Require().NoError(suite.repository.Update(ctx, sessionA))

	// The second session saw PENDING, but the row moved on; its write is
	// rejected and no second audit entry appears.
	suite.Require().NoError(sessionB.SubmitOffer(sessionB.ComposerID(), price, 14, 2, ""))
	err = suite.repository.Update(ctx, sessionB)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	history, historyErr := suite.repository.GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(historyErr)
	suite.Len(history, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByParticipant_ReturnsBothSides() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	composerID := kernel.NewUUID()

	asCustomer, err := order.NewOrder(kernel.NewUUID(), "ORD-2026-0005", customerID, composerID, suite.defaultDetails())
	suite.Require().NoError(err)
	asComposer, err := order.NewOrder(kernel.NewUUID(), "ORD-2026-0006", kernel.NewUUID(), customerID, suite.defaultDetails())
	suite.Require().NoError(err)
	unrelated, err := order.NewOrder(kernel.NewUUID(), "ORD-2026-0007", kernel.NewUUID(), composerID, suite.defaultDetails())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Add(ctx, asCustomer))
	suite.Require().NoError(suite.repository.Add(ctx, asComposer))
	suite.Require().NoError(suite.repository.Add(ctx, unrelated))

	orders, err := suite.repository.GetAllByParticipant(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	for _, o := range orders {
		suite.True(o.CustomerID().IsEqual(customerID) || o.ComposerID().IsEqual(customerID))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllAwaitingOffer_FiltersByStatus() {
	ctx := context.Background()

	pending := suite.newOrder("ORD-2026-0008", suite.defaultDetails())
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	offered := suite.newOrder("ORD-2026-0009", suite.defaultDetails())
	price := mustMoney(suite, "200.00")
	suite.Require().NoError(offered.SubmitOffer(offered.ComposerID(), price, 7, 1, ""))
	suite.Require().NoError(suite.repository.Add(ctx, offered))

	accepted := suite.newOrder("ORD-2026-0010", suite.defaultDetails())
	suite.Require().NoError(accepted.SubmitOffer(accepted.ComposerID(), price, 7, 1, ""))
	suite.Require().NoError(accepted.AcceptOffer(accepted.CustomerID()))
	suite.Require().NoError(suite.repository.Add(ctx, accepted))

	awaiting, err := suite.repository.GetAllAwaitingOffer(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(awaiting, 2)
	for _, o := range awaiting {
		suite.Contains([]order.Status{order.Pending, order.OfferPending}, o.Status())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) defaultDetails() order.Details {
	return order.Details{
		Title:       "Epic trailer cue",
		Description: "Two minute orchestral trailer cue with a big finish",
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(number string, details order.Details) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(), details)
	suite.Require().NoError(err)
	return o
}

func mustMoney(suite *OrderRepositoryIntegrationTestSuite, s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
