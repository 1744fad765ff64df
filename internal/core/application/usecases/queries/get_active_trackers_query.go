package queries

import (
	"errors"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetActiveTrackersQueryIsNotConstructed = errors.New(
	"GetActiveTrackersQuery must be created via NewGetActiveTrackersQuery constructor",
)

// GetActiveTrackersQuery lists every tracker that has not reached Completed,
// oldest first.
type GetActiveTrackersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveTrackersQuery() GetActiveTrackersQuery {
	return GetActiveTrackersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveTrackersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveTrackersQueryIsNotConstructed)
}

// GetActiveTrackersQueryResponse is one row of the active tracker list.
type GetActiveTrackersQueryResponse struct {
	TrackerID kernel.UUID
	OrderID   kernel.UUID
	ItemName  string
	Quantity  int
	Price     decimal.Decimal
	Currency  string
	Step      tracking.Step
	CreatedAt time.Time
}
