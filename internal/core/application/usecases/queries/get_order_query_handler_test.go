package queries_test

import (
	"context"
	"testing"
	"time"

	"melodia/internal/adapters/out/postgres"
	"melodia/internal/adapters/out/postgres/orderrepo"
	"melodia/internal/core/application/usecases/queries"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"
	"melodia/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_history").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsDetailWithChronologicalHistory() {
	ctx := context.Background()

	o := suite.storedCompletedOrder(ctx, "ORD-2026-4001")

	query, err := queries.NewGetOrderQuery(o.ID(), o.CustomerID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(o.ID().String(), detail.ID)
	suite.Equal("ORD-2026-4001", detail.Number)
	suite.Equal(order.Completed.String(), detail.Status)
	suite.Require().NotNil(detail.OfferedPrice)
	suite.InDelta(450.00, *detail.OfferedPrice, 0.001)
	suite.NotNil(detail.OfferAcceptedAt)

	statuses := make([]string, 0, len(detail.History))
	for _, entry := range detail.History {
		statuses = append(statuses, entry.Status)
	}
	suite.Equal([]string{
		order.OfferPending.String(),
		order.OfferAccepted.String(),
		order.ReadyForPayment.String(),
		order.Completed.String(),
	}, statuses)

	for i := 1; i < len(detail.History); i++ {
		suite.False(detail.History[i].CreatedAt.Before(detail.History[i-1].CreatedAt))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ComposerMayRead() {
	ctx := context.Background()

	o := suite.storedCompletedOrder(ctx, "ORD-2026-4002")

	query, err := queries.NewGetOrderQuery(o.ID(), o.ComposerID())
	suite.Require().NoError(err)

	detail, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(o.ComposerID().String(), detail.ComposerID)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_StrangerIsForbidden() {
	ctx := context.Background()

	o := suite.storedCompletedOrder(ctx, "ORD-2026-4003")

	query, err := queries.NewGetOrderQuery(o.ID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)
	suite.Require().ErrorIs(err, errs.ErrForbidden)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) storedCompletedOrder(ctx context.Context, number string) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(), order.Details{
		Title:       "Epic trailer cue",
		Description: "Two minute orchestral trailer cue with a big finish",
	})
	suite.Require().NoError(err)

	price, err := kernel.MoneyFromString("450.00")
	suite.Require().NoError(err)
	suite.Require().NoError(o.SubmitOffer(o.ComposerID(), price, 10, 3, ""))
	suite.Require().NoError(o.AcceptOffer(o.CustomerID()))
	suite.Require().NoError(o.Deliver(o.ComposerID(), "https://cdn.example.com/track.wav", ""))
	suite.Require().NoError(o.Complete(o.CustomerID()))

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, noopTracker{}).Add(ctx, o))
	return o
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
