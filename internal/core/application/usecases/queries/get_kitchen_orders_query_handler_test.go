package queries_test

import (
	"context"
	"testing"
	"time"

	"burgercounter/internal/adapters/out/postgres/customerrepo"
	"burgercounter/internal/adapters/out/postgres/ledgerrepo"
	"burgercounter/internal/adapters/out/postgres/menurepo"
	"burgercounter/internal/adapters/out/postgres/orderrepo"
	"burgercounter/internal/core/application/usecases/queries"
	"burgercounter/internal/core/domain/model/customer"
	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/menu"
	"burgercounter/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetKitchenOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetKitchenOrdersQueryHandler
	orderRepo    *orderrepo.GormOrderRepository
	customerRepo *customerrepo.GormCustomerRepository
	menuRepo     *menurepo.GormMenuRepository
	testItem     *menu.Item
	testSideDish *menu.SideDish
	testCustomer *customer.Customer
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&ledgerrepo.MovementDTO{},
		&menurepo.MenuItemDTO{},
		&menurepo.SideDishDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetKitchenOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.customerRepo = customerrepo.NewGormCustomerRepository(db, &mockAggregateTracker{})
	suite.menuRepo = menurepo.NewGormMenuRepository(db, &mockAggregateTracker{})

	now := time.Now().UTC()

	price := suite.mustMoney("15.00")
	suite.testItem, err = menu.NewItem(kernel.NewUUID(), "X-Burger Clássico", price, "Hambúrguer, queijo, alface, tomate", now)
	suite.Require().NoError(err)
	err = suite.menuRepo.AddItem(ctx, suite.testItem)
	suite.Require().NoError(err)

	suite.testSideDish, err = menu.NewSideDish(kernel.NewUUID(), "Fritas", "🍟")
	suite.Require().NoError(err)
	err = suite.menuRepo.AddSideDish(ctx, suite.testSideDish)
	suite.Require().NoError(err)

	suite.testCustomer, err = customer.NewCustomer(kernel.NewUUID(), "Maria", "21999990000", now)
	suite.Require().NoError(err)
	err = suite.customerRepo.Add(ctx, suite.testCustomer)
	suite.Require().NoError(err)
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetKitchenOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyAcceptedAndPreparing() {
	now := time.Now().UTC()

	accepted := suite.placeOrder(now)
	preparing := suite.placeOrder(now.Add(time.Second))
	suite.Require().NoError(preparing.ChangeStatus(order.Preparing, now.Add(2*time.Second)))

	outForDelivery := suite.placeOrder(now.Add(3 * time.Second))
	suite.Require().NoError(outForDelivery.ChangeStatus(order.Preparing, now.Add(4*time.Second)))
	suite.Require().NoError(outForDelivery.ChangeStatus(order.OutForDelivery, now.Add(5*time.Second)))

	cancelled := suite.placeOrder(now.Add(6 * time.Second))
	suite.Require().NoError(cancelled.ChangeStatus(order.Cancelled, now.Add(7*time.Second)))

	suite.saveOrders(accepted, preparing, outForDelivery, cancelled)

	query := queries.NewGetKitchenOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	suite.True(resultIDs[accepted.ID()])
	suite.True(resultIDs[preparing.ID()])
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_OrdersAreOldestFirst() {
	now := time.Now().UTC()

	third := suite.placeOrder(now.Add(2 * time.Minute))
	first := suite.placeOrder(now)
	second := suite.placeOrder(now.Add(time.Minute))

	// Insert out of order so the sort cannot come from insertion order
	suite.saveOrders(third, first, second)

	query := queries.NewGetKitchenOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(first.ID()))
	suite.True(result[1].ID.IsEqual(second.ID()))
	suite.True(result[2].ID.IsEqual(third.ID()))
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_HydratesJoinedFields() {
	o := suite.placeOrder(time.Now().UTC())
	suite.saveOrders(o)

	query := queries.NewGetKitchenOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	got := result[0]
	suite.Equal("Maria", got.Customer.Name)
	suite.Equal("21999990000", got.Customer.Phone)
	suite.Equal("X-Burger Clássico", got.Item.Name)
	suite.Equal("Fritas", got.SideDish.Name)
	suite.Equal("🍟", got.SideDish.Icon)
	suite.Equal("Rua das Laranjeiras", got.Address.Street)
	suite.Equal("Centro", got.Address.Neighborhood)
	suite.Equal(order.Accepted, got.Status)
	suite.Equal(order.Cash, got.PaymentMethod)
	suite.True(got.ItemPrice.IsEqual(suite.mustMoney("15.00")))
	suite.True(got.DeliveryFee.IsEqual(suite.mustMoney("2.00")))
	suite.True(got.Total.IsEqual(suite.mustMoney("17.00")))
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetKitchenOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetKitchenOrdersQuery constructor")
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) placeOrder(createdAt time.Time) *order.Order {
	address, err := order.NewAddress("", "Rua das Laranjeiras", "120", "Centro", "", suite.mustMoney("2.00"))
	suite.Require().NoError(err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		suite.testCustomer.ID(),
		suite.testItem.ID(),
		suite.testSideDish.ID(),
		address,
		order.Cash,
		suite.mustMoney("15.00"),
		"",
		createdAt,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) saveOrders(orders ...*order.Order) {
	for _, o := range orders {
		err := suite.orderRepo.Add(context.Background(), o)
		suite.Require().NoError(err)
	}
}

func (suite *GetKitchenOrdersQueryHandlerTestSuite) mustMoney(s string) kernel.Money {
	m, err := kernel.MoneyFromString(s)
	suite.Require().NoError(err)
	return m
}

func TestGetKitchenOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetKitchenOrdersQueryHandlerTestSuite))
}

// mockAggregateTracker is a no-op tracker; query tests don't need aggregate
// tracking.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
	// No-op for query tests
}
