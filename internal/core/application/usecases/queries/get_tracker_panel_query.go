// Package queries contains the read side of the tracker service.
package queries

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/guard"
)

var ErrGetTrackerPanelQueryIsNotConstructed = errors.New(
	"GetTrackerPanelQuery must be created via NewGetTrackerPanelQuery constructor",
)

// GetTrackerPanelQuery renders the tracker panel of one order item.
//
// Example:
//
//	query, err := NewGetTrackerPanelQuery(trackerID, true)
//	if err != nil {
//	    return err
//	}
//	panel, err := handler.Handle(ctx, query)
type GetTrackerPanelQuery struct {
	trackerID       kernel.UUID
	showFullDetails bool

	guard guard.ConstructorGuard
}

func NewGetTrackerPanelQuery(trackerID kernel.UUID, showFullDetails bool) (GetTrackerPanelQuery, error) {
	if err := trackerID.Validate(); err != nil {
		return GetTrackerPanelQuery{}, err
	}

	return GetTrackerPanelQuery{
		trackerID:       trackerID,
		showFullDetails: showFullDetails,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrackerPanelQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackerPanelQueryIsNotConstructed)
}

func (q GetTrackerPanelQuery) TrackerID() kernel.UUID {
	return q.trackerID
}

// ShowFullDetails reports whether the item detail block is requested.
func (q GetTrackerPanelQuery) ShowFullDetails() bool {
	return q.showFullDetails
}
