package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/out/postgres"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/ports"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the unit of work against a real
// PostgreSQL container.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	dsn       string
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

	suite.dsn, err = container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := postgres_adapter.Open(postgres_adapter.Options{DSN: suite.dsn})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE trackers").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.TrackerRepository())
	suite.NotNil(uow2.TrackerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	tr := createTestTracker(suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TrackerRepository().Add(ctx, tr))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().TrackerRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Equal(tracking.OrderPlaced, loaded.Step())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	tr := createTestTracker(suite)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.TrackerRepository().Add(ctx, tr))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().TrackerRepository().Get(ctx, tr.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransitionIsAtomic() {
	ctx := context.Background()
	tr := createTestTracker(suite)
	suite.Require().NoError(suite.factory.Create().TrackerRepository().Add(ctx, tr))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.TrackerRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkOutForDelivery(time.Now().UTC()))
	suite.Require().NoError(uow.TrackerRepository().Update(ctx, loaded))

	outside, err := suite.factory.Create().TrackerRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Equal(tracking.OrderPlaced, outside.Step(), "uncommitted step must not be visible")

	suite.Require().NoError(uow.Commit(ctx))

	outside, err = suite.factory.Create().TrackerRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.Equal(tracking.OutForDelivery, outside.Step())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOpen_DuplicateTrackerIsTranslated() {
	ctx := context.Background()
	tr := createTestTracker(suite)
	repo := suite.factory.Create().TrackerRepository()

	suite.Require().NoError(repo.Add(ctx, tr))
	suite.Require().ErrorIs(repo.Add(ctx, tr), errs.ErrObjectAlreadyExists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOpen_LibPqDriver() {
	ctx := context.Background()

	db, err := postgres_adapter.Open(postgres_adapter.Options{
		DSN:    suite.dsn,
		Driver: postgres_adapter.DriverLibPq,
	})
	suite.Require().NoError(err)

	tr := createTestTracker(suite)
	factory := postgres_adapter.NewGormUnitOfWorkFactory(db)
	suite.Require().NoError(factory.Create().TrackerRepository().Add(ctx, tr))

	loaded, err := factory.Create().TrackerRepository().Get(ctx, tr.ID())
	suite.Require().NoError(err)
	suite.True(loaded.Item().Price().IsEqual(tr.Item().Price()))

	suite.Require().ErrorIs(factory.Create().TrackerRepository().Add(ctx, tr), errs.ErrObjectAlreadyExists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOpen_UnknownDriver() {
	_, err := postgres_adapter.Open(postgres_adapter.Options{DSN: suite.dsn, Driver: "mysql"})
	suite.Require().Error(err)
}

func createTestTracker(suite *UnitOfWorkIntegrationTestSuite) *tracking.Tracker {
	price, err := kernel.MoneyFromString("2500", "NGN")
	suite.Require().NoError(err)

	item, err := tracking.NewOrderItem(kernel.NewUUID(), "Phone Case", price, 3,
		"https://cdn.example.com/items/case.png")
	suite.Require().NoError(err)

	tr, err := tracking.NewTracker(kernel.NewUUID(), kernel.NewUUID(), item, time.Now().UTC())
	suite.Require().NoError(err)
	return tr
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
