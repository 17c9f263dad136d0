package queries_test

import (
	"context"
	"testing"
	"time"

	"melodia/internal/adapters/out/postgres"
	"melodia/internal/adapters/out/postgres/cartrepo"
	"melodia/internal/adapters/out/postgres/orderrepo"
	"melodia/internal/adapters/out/postgres/trackrepo"
	"melodia/internal/core/application/usecases/queries"
	"melodia/internal/core/domain/model/cart"
	"melodia/internal/core/domain/model/catalog"
	"melodia/internal/core/domain/model/kernel"
	"melodia/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCartQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCartQueryHandler
}

func (suite *GetCartQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetCartQueryHandler(db)
}

func (suite *GetCartQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCartQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE orders, order_history, cart_items, tracks, track_prices",
	).Error)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_EmptyCart_ReturnsZeroTotal() {
	query, err := queries.NewGetCartQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result.Items)
	suite.Zero(result.Total)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_PricesEveryLineKind() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	// Track with a stored ENTERPRISE override: the override wins.
	overridden := suite.storedTrack(ctx, "100.00", func(t *catalog.Track) {
		price, err := kernel.MoneyFromString("199.00")
		suite.Require().NoError(err)
		suite.Require().NoError(t.SetTierPrice(catalog.Enterprise, price))
	})
	suite.storedTrackItem(ctx, userID, overridden.ID(), catalog.Enterprise)

	// Track without an override: base price times tier multiplier.
	computed := suite.storedTrack(ctx, "100.00", nil)
	suite.storedTrackItem(ctx, userID, computed.ID(), catalog.Personal)

	// Completed order: priced at the accepted offer, the tier does not
	// rescale it.
	completed := suite.storedCompletedOrder(ctx, userID, "ORD-2026-3001", "450.00")
	item, err := cart.NewOrderItem(kernel.NewUUID(), userID, completed.ID(), catalog.Commercial)
	suite.Require().NoError(err)
	suite.Require().NoError(cartrepo.NewGormCartRepository(suite.db, noopTracker{}).Add(ctx, item))

	query, err := queries.NewGetCartQuery(userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Items, 3)

	bySubject := make(map[string]queries.CartItemResponse)
	for _, line := range result.Items {
		if line.TrackID != "" {
			bySubject[line.TrackID] = line
		} else {
			bySubject[line.OrderID] = line
		}
	}

	suite.InDelta(199.00, bySubject[overridden.ID().String()].Price, 0.001)
	suite.InDelta(60.00, bySubject[computed.ID().String()].Price, 0.001)
	suite.InDelta(450.00, bySubject[completed.ID().String()].Price, 0.001)
	suite.InDelta(709.00, result.Total, 0.001)
}

func (suite *GetCartQueryHandlerTestSuite) TestHandle_OtherUsersItemsAreInvisible() {
	ctx := context.Background()
	userID := kernel.NewUUID()

	track := suite.storedTrack(ctx, "100.00", nil)
	suite.storedTrackItem(ctx, kernel.NewUUID(), track.ID(), catalog.Commercial)

	query, err := queries.NewGetCartQuery(userID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result.Items)
}

func (suite *GetCartQueryHandlerTestSuite) storedTrack(
	ctx context.Context, base string, customize func(*catalog.Track),
) *catalog.Track {
	price, err := kernel.MoneyFromString(base)
	suite.Require().NoError(err)
	track, err := catalog.NewTrack(kernel.NewUUID(), kernel.NewUUID(), "Night Drive", "synthwave", price)
	suite.Require().NoError(err)
	if customize != nil {
		customize(track)
	}

	suite.Require().NoError(trackrepo.NewGormTrackRepository(suite.db, noopTracker{}).Add(ctx, track))
	return track
}

func (suite *GetCartQueryHandlerTestSuite) storedTrackItem(
	ctx context.Context, userID, trackID kernel.UUID, tier catalog.LicenseTier,
) *cart.CartItem {
	item, err := cart.NewTrackItem(kernel.NewUUID(), userID, trackID, tier)
	suite.Require().NoError(err)
	suite.Require().NoError(cartrepo.NewGormCartRepository(suite.db, noopTracker{}).Add(ctx, item))
	return item
}

func (suite *GetCartQueryHandlerTestSuite) storedCompletedOrder(
	ctx context.Context, customerID kernel.UUID, number, offer string,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), number, customerID, kernel.NewUUID(), order.Details{
		Title:       "Epic trailer cue",
		Description: "Two minute orchestral trailer cue with a big finish",
	})
	suite.Require().NoError(err)

	price, err := kernel.MoneyFromString(offer)
	suite.Require().NoError(err)
	suite.Require().NoError(o.SubmitOffer(o.ComposerID(), price, 10, 3, ""))
	suite.Require().NoError(o.AcceptOffer(o.CustomerID()))
	suite.Require().NoError(o.Deliver(o.ComposerID(), "https://cdn.example.com/track.wav", ""))
	suite.Require().NoError(o.Complete(o.CustomerID()))

	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db, noopTracker{}).Add(ctx, o))
	return o
}

func TestGetCartQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCartQueryHandlerTestSuite))
}

// noopTracker satisfies the repositories' aggregate tracker; query tests
// do not inspect tracked aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}
