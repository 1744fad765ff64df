package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/application/usecases/commands"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTrackerRepository struct{ mock.Mock }

func (m *MockTrackerRepository) Add(ctx context.Context, t *tracking.Tracker) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackerRepository) Update(ctx context.Context, t *tracking.Tracker) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTrackerRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Tracker, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*tracking.Tracker); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTrackerUoW struct{ mock.Mock }

func (m *MockTrackerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTrackerUoW) TrackerRepository() ports.TrackerRepository {
	args := m.Called()
	return args.Get(0).(ports.TrackerRepository)
}

type MockTrackerUoWFactory struct{ mock.Mock }

func (m *MockTrackerUoWFactory) Create() commands.TrackerUoW {
	args := m.Called()
	return args.Get(0).(commands.TrackerUoW)
}

type MockDeliveryCodeStore struct{ mock.Mock }

func (m *MockDeliveryCodeStore) Issue(ctx context.Context, trackerID kernel.UUID) (string, error) {
	args := m.Called(ctx, trackerID)
	return args.String(0), args.Error(1)
}

func (m *MockDeliveryCodeStore) Expected(ctx context.Context, trackerID kernel.UUID) (string, error) {
	args := m.Called(ctx, trackerID)
	return args.String(0), args.Error(1)
}

func (m *MockDeliveryCodeStore) Consume(ctx context.Context, trackerID kernel.UUID) error {
	args := m.Called(ctx, trackerID)
	return args.Error(0)
}

type MockDeliveryCodeNotifier struct{ mock.Mock }

func (m *MockDeliveryCodeNotifier) Send(ctx context.Context, trackerID, orderID kernel.UUID, code string) error {
	args := m.Called(ctx, trackerID, orderID, code)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestItem(t *testing.T) tracking.OrderItem {
	t.Helper()

	price, err := kernel.MoneyFromString("4999.99", "NGN")
	require.NoError(t, err)

	item, err := tracking.NewOrderItem(kernel.NewUUID(), "Wireless Earbuds", price, 1,
		"https://cdn.example.com/items/earbuds.png")
	require.NoError(t, err)
	return item
}

// storedTracker returns a tracker as the repository would load it, sitting in step.
func storedTracker(t *testing.T, step tracking.Step) *tracking.Tracker {
	t.Helper()

	start := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	reached := make(map[tracking.Step]time.Time)
	for _, s := range tracking.Steps() {
		if s > step {
			break
		}
		reached[s] = start.Add(time.Duration(s) * time.Hour)
	}

	tr, err := tracking.RestoreTracker(kernel.NewUUID(), kernel.NewUUID(), newTestItem(t), step, reached, start)
	require.NoError(t, err)
	return tr
}

// expectTransition wires a factory/uow/repo trio for a successful load of tr.
func expectTransition(ctx context.Context, tr *tracking.Tracker) (*MockTrackerUoWFactory, *MockTrackerUoW, *MockTrackerRepository) {
	repo := new(MockTrackerRepository)
	uow := new(MockTrackerUoW)
	factory := new(MockTrackerUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TrackerRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", ctx, tr.ID()).Return(tr, nil).Once()

	return factory, uow, repo
}
