package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgres_adapter "burgercounter/internal/adapters/out/postgres"
	"burgercounter/internal/adapters/out/postgres/customerrepo"
	"burgercounter/internal/adapters/out/postgres/ledgerrepo"
	"burgercounter/internal/adapters/out/postgres/menurepo"
	"burgercounter/internal/adapters/out/postgres/orderrepo"
	"burgercounter/internal/core/domain/model/customer"
	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"
	"burgercounter/internal/core/domain/model/order"
	"burgercounter/internal/core/ports"
	"burgercounter/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database. The order-creation path depends on the
// unit of work making the order, its customer, and its ledger entry one
// atomic write, so that is what these tests pin down.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
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

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, customers, ledger_movements, menu_items, side_dishes").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CustomerRepository())
	suite.NotNil(uow2.LedgerRepository())
	suite.NotNil(uow2.MenuRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	// A second Begin on an active transaction is a no-op
	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderPlacementIsAtomic walks the write side of order
// placement: customer, order and ledger entry in one transaction, all visible
// after commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderPlacementIsAtomic() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer("21999990000")
	testOrder := createTestOrder(testCustomer.ID())
	testMovement := createTestMovement(testOrder)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.LedgerRepository().Add(ctx, testMovement)
	suite.Require().NoError(err)

	// Visible inside the transaction
	retrieved, err := uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrieved, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.Total().IsEqual(testOrder.Total()))
	suite.Equal(order.Accepted, retrieved.Status())

	retrievedCustomer, err := newUow.CustomerRepository().GetByPhone(ctx, "21999990000")
	suite.Require().NoError(err)
	suite.True(retrievedCustomer.ID().IsEqual(testCustomer.ID()))

	var movementCount int64
	err = suite.db.Raw("SELECT COUNT(*) FROM ledger_movements WHERE order_id = ?", testOrder.ID().Bytes()).
		Scan(&movementCount).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), movementCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer("21999990001")
	testOrder := createTestOrder(testCustomer.ID())
	testMovement := createTestMovement(testOrder)

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.LedgerRepository().Add(ctx, testMovement)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = newUow.CustomerRepository().GetByPhone(ctx, "21999990001")
	suite.Require().Error(err, "Customer should not exist after rollback")
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	var movementCount int64
	err = suite.db.Raw("SELECT COUNT(*) FROM ledger_movements").Scan(&movementCount).Error
	suite.Require().NoError(err)
	suite.Zero(movementCount)
}

// TestUnitOfWork_DuplicatePhoneConflict verifies that the unique index on the
// phone column surfaces as a ConflictError, which the order-creation handler
// relies on to resolve concurrent first orders from the same phone.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicatePhoneConflict() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first := createTestCustomer("21977770000")
	err := uow.CustomerRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second := createTestCustomer("21977770000")
	err = uow.CustomerRepository().Add(ctx, second)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)
}

// TestUnitOfWork_ConcurrentStatusUpdateConflict loads the same order twice
// and updates both copies. The second write must fail on the version check
// instead of silently overwriting the first transition.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ConcurrentStatusUpdateConflict() {
	ctx := context.Background()

	testCustomer := createTestCustomer("21966660000")
	testOrder := createTestOrder(testCustomer.ID())

	setupUow := suite.factory.Create()
	err := setupUow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)
	err = setupUow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	copy1, err := uow1.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	copy2, err := uow2.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	now := time.Now().UTC()
	err = copy1.ChangeStatus(order.Preparing, now)
	suite.Require().NoError(err)
	err = uow1.OrderRepository().Update(ctx, copy1)
	suite.Require().NoError(err)

	err = copy2.ChangeStatus(order.Cancelled, now)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Update(ctx, copy2)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConflict)

	// The first transition won
	finalUow := suite.factory.Create()
	final, err := finalUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Preparing, final.Status())
	suite.Equal(2, final.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StatusUpdatePersistsVersion() {
	ctx := context.Background()

	testCustomer := createTestCustomer("21955550000")
	testOrder := createTestOrder(testCustomer.ID())

	uow := suite.factory.Create()
	err := uow.Begin(ctx)
	suite.Require().NoError(err)
	err = uow.CustomerRepository().Add(ctx, testCustomer)
	suite.Require().NoError(err)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)
	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Each transition is persisted before the next, matching how the status
	// command handler works; the CAS predicate only covers one version bump.
	now := time.Now().UTC()
	err = testOrder.ChangeStatus(order.Preparing, now)
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	err = testOrder.ChangeStatus(order.OutForDelivery, now.Add(time.Minute))
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, testOrder)
	suite.Require().NoError(err)

	final, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.OutForDelivery, final.Status())
	suite.Equal(3, final.Version())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	customer1 := createTestCustomer("21944440000")
	customer2 := createTestCustomer("21933330000")
	order1 := createTestOrder(customer1.ID())
	order2 := createTestOrder(customer2.ID())

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)
	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.OrderRepository().Add(ctx, order1)
	suite.Require().NoError(err)
	err = uow2.OrderRepository().Add(ctx, order2)
	suite.Require().NoError(err)

	_, err = uow1.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")
	_, err = uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)
	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testCustomer := createTestCustomer("21922220000")
	testOrder := createTestOrder(testCustomer.ID())

	// Without Begin, repository writes auto-commit
	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetMissingOrder_ReturnsNotFound() {
	ctx := context.Background()
	uow := suite.factory.Create()

	_, err := uow.OrderRepository().Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

func createTestCustomer(phone string) *customer.Customer {
	c, _ := customer.NewCustomer(kernel.NewUUID(), "Maria", phone, time.Now().UTC())
	return c
}

func createTestOrder(customerID kernel.UUID) *order.Order {
	fee, _ := kernel.MoneyFromString("2.00")
	address, _ := order.NewAddress("", "Rua das Laranjeiras", "120", "Centro", "", fee)
	price, _ := kernel.MoneyFromString("15.00")

	o, _ := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		kernel.NewUUID(),
		kernel.NewUUID(),
		address,
		order.Cash,
		price,
		"",
		time.Now().UTC(),
	)
	return o
}

func createTestMovement(o *order.Order) *ledger.Movement {
	orderID := o.ID()
	m, _ := ledger.NewMovement(
		kernel.NewUUID(), &orderID, ledger.Entry, o.Total(), "pedido", time.Now().UTC())
	return m
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
