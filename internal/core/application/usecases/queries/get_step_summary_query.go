package queries

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/guard"
)

var ErrGetStepSummaryQueryIsNotConstructed = errors.New(
	"GetStepSummaryQuery must be created via NewGetStepSummaryQuery constructor",
)

// GetStepSummaryQuery counts trackers per step.
type GetStepSummaryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStepSummaryQuery() GetStepSummaryQuery {
	return GetStepSummaryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetStepSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetStepSummaryQueryIsNotConstructed)
}

// GetStepSummaryQueryResponse holds a count for every step, zero included.
type GetStepSummaryQueryResponse struct {
	Counts map[tracking.Step]int64
}

// Active returns the number of trackers that are not Completed.
func (r GetStepSummaryQueryResponse) Active() int64 {
	var total int64
	for step, n := range r.Counts {
		if !step.IsTerminal() {
			total += n
		}
	}
	return total
}
