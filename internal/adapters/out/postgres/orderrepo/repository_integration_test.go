package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"laundry/internal/adapters/out/postgres/orderrepo"
	"laundry/internal/adapters/out/postgres/pgtest"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = orderrepo.NewGormOrderRepository(suite.database.DB, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_TracksAggregate() {
	o := suite.pendingOrder(time.Now())

	suite.Require().NoError(suite.repository.Add(context.Background(), o))

	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", o.ID(), o)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RestoresEveryField() {
	ctx := context.Background()
	o := suite.acceptedOrder(12, time.Now())
	suite.Require().NoError(o.RecordPayment(decimal.NewFromInt(1860), time.Now()))
	for _, s := range []order.Status{order.Washing, order.Ready, order.Completed} {
		suite.Require().NoError(o.ChangeStatus(s, time.Now()))
	}
	rating, err := order.NewRating(4, "smells great")
	suite.Require().NoError(err)
	suite.Require().NoError(o.Rate(rating))
	suite.Require().NoError(suite.repository.Add(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())

	suite.Require().NoError(err)
	suite.True(o.IsEqual(got))
	suite.Equal("RKR012", got.Code().String())
	suite.Equal(o.Customer(), got.Customer())
	suite.Equal(pricing.Package3, got.ServicePackage())
	suite.True(got.Weight().Decimal().Equal(decimal.NewFromInt(10)))
	suite.True(got.Distance().Decimal().Equal(decimal.NewFromInt(4)))
	suite.True(got.Pricing().ComputedPrice().Equal(decimal.NewFromInt(1860)))
	suite.Equal(2, got.Pricing().Loads())
	suite.Equal(order.Completed, got.Status())
	suite.Require().NotNil(got.Employee())
	suite.True(o.Employee().IsEqual(*got.Employee()))
	suite.True(got.IsPaid())
	suite.Require().NotNil(got.Rating())
	suite.Equal(4, got.Rating().Stars())
	suite.Equal("smells great", got.Rating().Comment())
	suite.WithinDuration(o.CreatedAt(), got.CreatedAt(), time.Millisecond)
	suite.Require().NotNil(got.CodeAssignedAt())
	suite.Require().NotNil(got.CompletedAt())
	suite.Empty(got.DomainEvents())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByCode() {
	ctx := context.Background()
	pending := suite.pendingOrder(time.Now())
	accepted := suite.acceptedOrder(3, time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, pending))
	suite.Require().NoError(suite.repository.Add(ctx, accepted))

	byPlaceholder, err := suite.repository.GetByCode(ctx, pending.Code())
	suite.Require().NoError(err)
	suite.True(pending.IsEqual(byPlaceholder))

	byCode, err := suite.repository.GetByCode(ctx, orderid.FromNumber(3))
	suite.Require().NoError(err)
	suite.True(accepted.IsEqual(byCode))

	_, err = suite.repository.GetByCode(ctx, orderid.FromNumber(4))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateCode_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.acceptedOrder(10, time.Now())))

	err := suite.repository.Add(ctx, suite.acceptedOrder(10, time.Now()))

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	suite.Contains(err.Error(), "RKR010")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DuplicateCode_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.acceptedOrder(10, time.Now())))
	pending := suite.pendingOrder(time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, pending))

	suite.Require().NoError(pending.Accept(orderid.FromNumber(10), kernel.NewUUID(), time.Now()))
	err := suite.repository.Update(ctx, pending)

	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
	stored, err := suite.repository.Get(ctx, pending.ID())
	suite.Require().NoError(err)
	suite.True(stored.Code().IsPlaceholder())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	o := suite.pendingOrder(time.Now())
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(o.Accept(orderid.FromNumber(1), kernel.NewUUID(), time.Now()))
	suite.Require().NoError(o.Reprice(pricing.DefaultTariff(), kernel.NewKilograms(16)))
	suite.Require().NoError(suite.repository.Update(ctx, o))

	got, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("RKR001", got.Code().String())
	suite.Equal(order.Accepted, got.Status())
	suite.True(got.Pricing().ComputedPrice().Equal(decimal.NewFromInt(2940)))
	suite.Equal(3, got.Pricing().Loads())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.pendingOrder(time.Now()))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLatestPermanentCode_Empty() {
	suite.Require().NoError(suite.repository.Add(context.Background(), suite.pendingOrder(time.Now())))

	latest, err := suite.repository.LatestPermanentCode(context.Background())

	suite.Require().NoError(err)
	suite.Empty(latest)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLatestPermanentCode_MostRecentlyAssigned() {
	ctx := context.Background()
	base := time.Now().Add(-time.Hour)
	suite.Require().NoError(suite.repository.Add(ctx, suite.acceptedOrder(5, base)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.acceptedOrder(7, base.Add(time.Minute))))
	suite.Require().NoError(suite.repository.Add(ctx, suite.pendingOrder(base.Add(2*time.Minute))))

	latest, err := suite.repository.LatestPermanentCode(ctx)

	suite.Require().NoError(err)
	suite.Equal("RKR007", latest)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestLatestPermanentCode_WidthGrowsPastThreeDigits() {
	ctx := context.Background()
	at := time.Now()
	suite.Require().NoError(suite.repository.Add(ctx, suite.acceptedOrder(999, at)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.acceptedOrder(1000, at)))

	latest, err := suite.repository.LatestPermanentCode(ctx)

	suite.Require().NoError(err)
	suite.Equal("RKR1000", latest)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllInProgress() {
	ctx := context.Background()
	accepted := suite.acceptedOrder(1, time.Now())
	washing := suite.acceptedOrder(2, time.Now())
	suite.Require().NoError(washing.ChangeStatus(order.Washing, time.Now()))
	cancelled := suite.acceptedOrder(3, time.Now())
	suite.Require().NoError(cancelled.ChangeStatus(order.Cancelled, time.Now()))
	for _, o := range []*order.Order{accepted, washing, cancelled, suite.pendingOrder(time.Now())} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.GetAllInProgress(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	for _, o := range got {
		suite.True(o.Status().IsInProgress())
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllPendingCreatedBefore() {
	ctx := context.Background()
	now := time.Now()
	old := suite.pendingOrder(now.Add(-48 * time.Hour))
	fresh := suite.pendingOrder(now.Add(-time.Hour))
	oldAccepted := suite.acceptedOrder(1, now.Add(-72*time.Hour))
	for _, o := range []*order.Order{old, fresh, oldAccepted} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.GetAllPendingCreatedBefore(ctx, now.Add(-24*time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(old.IsEqual(got[0]))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllCompletedBetween() {
	ctx := context.Background()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	inside := suite.completedOrder(1, day.Add(10*time.Hour))
	before := suite.completedOrder(2, day.Add(-time.Hour))
	after := suite.completedOrder(3, day.Add(24*time.Hour))
	for _, o := range []*order.Order{inside, before, after, suite.acceptedOrder(4, day.Add(time.Hour))} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	got, err := suite.repository.GetAllCompletedBetween(ctx, day, day.Add(24*time.Hour))

	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.True(inside.IsEqual(got[0]))
}

func (suite *OrderRepositoryIntegrationTestSuite) pendingOrder(createdAt time.Time) *order.Order {
	customer, err := order.NewCustomer("Maria Santos", "0917 555 0101", "12 Mabini St")
	suite.Require().NoError(err)
	in, err := pricing.NewPricingInput(pricing.Package3, kernel.NewKilograms(10), kernel.NewKilometers(4))
	suite.Require().NoError(err)
	o, err := order.NewCustomerOrder(kernel.NewUUID(), customer, in, pricing.DefaultTariff(), createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) acceptedOrder(n uint64, at time.Time) *order.Order {
	o := suite.pendingOrder(at)
	suite.Require().NoError(o.Accept(orderid.FromNumber(n), kernel.NewUUID(), at))
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) completedOrder(n uint64, completedAt time.Time) *order.Order {
	o := suite.acceptedOrder(n, completedAt.Add(-2*time.Hour))
	suite.Require().NoError(o.ChangeStatus(order.Washing, completedAt))
	suite.Require().NoError(o.ChangeStatus(order.Ready, completedAt))
	suite.Require().NoError(o.ChangeStatus(order.Completed, completedAt))
	return o
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
