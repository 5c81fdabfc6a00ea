package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newActor(role actor.Role) actor.Actor {
	a, err := actor.NewActor(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return a
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	spec, err := order.NewSpecification("vinyl banner", "200x80cm", "4/0 CMYK")
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-"+kernel.NewUUID().String()[:8], spec, suite.newActor(actor.RoleClient))
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripPreservesAggregateState() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	designer := suite.newActor(actor.RoleDesigner)

	suite.Require().NoError(testOrder.Transition(order.Designing, designer))
	suite.Require().NoError(testOrder.AttachDesignLink("https://files.example/d/1.pdf", designer))
	suite.Require().NoError(testOrder.CompleteSubProcess(order.StageDesign, "ripping", designer))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.OrderNumber(), loaded.OrderNumber())
	suite.Equal(order.Designing, loaded.Status())
	suite.Equal(testOrder.Progress(), loaded.Progress())
	suite.Equal(testOrder.Version(), loaded.Version())
	suite.Equal([]string{"https://files.example/d/1.pdf"}, loaded.DesignLinks())
	suite.Equal(order.StageCompleted, loaded.StageState(order.StageDesign).Status)
	suite.True(loaded.StageState(order.StageDesign).SubProcess("ripping").IsCompleted())
	suite.Len(loaded.History(), len(testOrder.History()))
	suite.Equal("vinyl banner", loaded.Specification().Material())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_BumpsVersion() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.Transition(order.Designing, suite.newActor(actor.RoleDesigner)))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Designing, reloaded.Status())
	suite.Equal(testOrder.Version()+1, reloaded.Version())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ConcurrentModification() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two sessions load the same snapshot.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	manager := suite.newActor(actor.RoleManager)
	suite.Require().NoError(first.Transition(order.OnHold, manager))
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// The second session's write must lose, not merge.
	suite.Require().NoError(second.Transition(order.StatusCancelled, manager))
	err = suite.repository.Update(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	// Reload and retry succeeds.
	retried, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OnHold, retried.Status())
	suite.Require().NoError(retried.Transition(order.StatusCancelled, manager))
	suite.Require().NoError(suite.repository.Update(ctx, retried))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DeliveryRoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	designer := suite.newActor(actor.RoleDesigner)
	prepress := suite.newActor(actor.RolePrepress)
	courier := suite.newActor(actor.RoleCourier)

	suite.Require().NoError(testOrder.Transition(order.Designing, designer))
	suite.Require().NoError(testOrder.AttachDesignLink("https://files.example/d/1.pdf", designer))
	suite.Require().NoError(testOrder.Transition(order.DesignDone, designer))
	suite.Require().NoError(testOrder.Transition(order.InPrepress, prepress))
	for _, name := range order.RequiredSubProcesses(order.StagePrepress) {
		suite.Require().NoError(testOrder.CompleteSubProcess(order.StagePrepress, name, prepress))
	}
	suite.Require().NoError(testOrder.ChooseDeliveryMode(
		order.DeliveryModeShippingCompany, "12 Harbor Rd", "Middle East", suite.newActor(actor.RoleClient)))
	suite.Require().NoError(testOrder.AssignCourier(courier.ID(), courier))

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(loaded.Delivery())
	suite.Equal(order.DeliveryModeShippingCompany, loaded.Delivery().Mode())
	suite.Equal("Middle East", loaded.Delivery().ShipmentCompany())
	suite.Equal("12 Harbor Rd", loaded.Delivery().Destination())
	suite.Require().NotNil(loaded.Delivery().AssignedCourier())
	suite.True(loaded.Delivery().AssignedCourier().IsEqual(courier.ID()))
	suite.Require().NoError(loaded.Delivery().CanComplete())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllActive_FiltersTerminalOrders() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	active := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, active))

	cancelled := suite.createTestOrder()
	suite.Require().NoError(cancelled.Transition(order.StatusCancelled, suite.newActor(actor.RoleManager)))
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	orders, err := suite.repository.GetAllActive(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID().IsEqual(active.ID()))
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
