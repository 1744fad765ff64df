package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/adapters/out/postgres/trackerrepo"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/queries"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type TrackerReadModelTestSuite struct {
	suite.Suite
	container      *postgres.PostgresContainer
	db             *gorm.DB
	activeHandler  queries.GetActiveTrackersQueryHandler
	summaryHandler queries.GetStepSummaryQueryHandler
	repo           *trackerrepo.GormTrackerRepository
	start          time.Time
}

func (suite *TrackerReadModelTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&trackerrepo.TrackerDTO{}))

	suite.activeHandler = queries.NewGetActiveTrackersQueryHandler(db)
	suite.summaryHandler = queries.NewGetStepSummaryQueryHandler(db)
	suite.repo = trackerrepo.NewGormTrackerRepository(db)
}

func (suite *TrackerReadModelTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TrackerReadModelTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE trackers").Error)
	suite.start = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

// storeTracker persists a tracker created at offset minutes after start and
// advanced to step.
func (suite *TrackerReadModelTestSuite) storeTracker(name string, offset int, step tracking.Step) *tracking.Tracker {
	price, err := kernel.MoneyFromString("1200.25", "NGN")
	suite.Require().NoError(err)
	item, err := tracking.NewOrderItem(kernel.NewUUID(), name, price, 1, "https://cdn.example.com/items/x.png")
	suite.Require().NoError(err)

	created := suite.start.Add(time.Duration(offset) * time.Minute)
	reached := make(map[tracking.Step]time.Time)
	for _, s := range tracking.Steps() {
		if s > step {
			break
		}
		reached[s] = created.Add(time.Duration(s) * time.Second)
	}

	tr, err := tracking.RestoreTracker(kernel.NewUUID(), kernel.NewUUID(), item, step, reached, created)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(context.Background(), tr))
	return tr
}

func (suite *TrackerReadModelTestSuite) TestActive_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.activeHandler.Handle(context.Background(), queries.NewGetActiveTrackersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *TrackerReadModelTestSuite) TestActive_ExcludesCompletedAndOrdersByCreation() {
	third := suite.storeTracker("Third", 30, tracking.FundsReleased)
	first := suite.storeTracker("First", 10, tracking.OrderPlaced)
	suite.storeTracker("Done", 5, tracking.Completed)
	second := suite.storeTracker("Second", 20, tracking.Delivered)

	result, err := suite.activeHandler.Handle(context.Background(), queries.NewGetActiveTrackersQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.True(result[0].TrackerID.IsEqual(first.ID()))
	suite.True(result[1].TrackerID.IsEqual(second.ID()))
	suite.True(result[2].TrackerID.IsEqual(third.ID()))

	suite.Equal("Second", result[1].ItemName)
	suite.Equal(tracking.Delivered, result[1].Step)
	suite.Equal("1200.25", result[1].Price.StringFixed(2))
	suite.Equal("NGN", result[1].Currency)
	suite.True(result[1].OrderID.IsEqual(second.OrderID()))
	suite.True(result[1].CreatedAt.Equal(second.CreatedAt()))
}

func (suite *TrackerReadModelTestSuite) TestActive_InvalidQuery_ReturnsError() {
	result, err := suite.activeHandler.Handle(context.Background(), queries.GetActiveTrackersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetActiveTrackersQueryIsNotConstructed)
	suite.Nil(result)
}

func (suite *TrackerReadModelTestSuite) TestActive_ContextCancellation_ReturnsError() {
	suite.storeTracker("Any", 1, tracking.OrderPlaced)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.activeHandler.Handle(ctx, queries.NewGetActiveTrackersQuery())
	suite.Require().Error(err)
	suite.Nil(result)
}

func (suite *TrackerReadModelTestSuite) TestSummary_CountsEveryStep() {
	suite.storeTracker("A", 1, tracking.OrderPlaced)
	suite.storeTracker("B", 2, tracking.OrderPlaced)
	suite.storeTracker("C", 3, tracking.Delivered)
	suite.storeTracker("D", 4, tracking.Completed)

	summary, err := suite.summaryHandler.Handle(context.Background(), queries.NewGetStepSummaryQuery())
	suite.Require().NoError(err)

	suite.Len(summary.Counts, 5)
	suite.EqualValues(2, summary.Counts[tracking.OrderPlaced])
	suite.EqualValues(0, summary.Counts[tracking.OutForDelivery])
	suite.EqualValues(1, summary.Counts[tracking.Delivered])
	suite.EqualValues(0, summary.Counts[tracking.FundsReleased])
	suite.EqualValues(1, summary.Counts[tracking.Completed])
	suite.EqualValues(3, summary.Active())
}

func (suite *TrackerReadModelTestSuite) TestSummary_InvalidQuery_ReturnsError() {
	_, err := suite.summaryHandler.Handle(context.Background(), queries.GetStepSummaryQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetStepSummaryQueryIsNotConstructed)
}

func TestTrackerReadModelTestSuite(t *testing.T) {
	suite.Run(t, new(TrackerReadModelTestSuite))
}
