package queries

import (
	"context"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
)

// TrackerReader loads a single tracker. ports.TrackerRepository satisfies it.
type TrackerReader interface {
	Get(ctx context.Context, id kernel.UUID) (*tracking.Tracker, error)
}

// GetTrackerPanelQueryHandler renders the panel of a stored tracker.
type GetTrackerPanelQueryHandler struct {
	reader   TrackerReader
	handlers tracking.ActionSet
}

// NewGetTrackerPanelQueryHandler renders panels offering the given actions.
// A nil set offers every action.
func NewGetTrackerPanelQueryHandler(reader TrackerReader, handlers tracking.ActionSet) GetTrackerPanelQueryHandler {
	if handlers == nil {
		handlers = tracking.AllActions()
	}
	return GetTrackerPanelQueryHandler{
		reader:   reader,
		handlers: handlers,
	}
}

// Handle returns errs.ErrObjectNotFound (wrapped) for an unknown tracker.
func (h GetTrackerPanelQueryHandler) Handle(ctx context.Context, query GetTrackerPanelQuery) (tracking.PanelView, error) {
	if err := query.Validate(); err != nil {
		return tracking.PanelView{}, err
	}

	tracker, err := h.reader.Get(ctx, query.TrackerID())
	if err != nil {
		return tracking.PanelView{}, err
	}

	return tracking.RenderPanel(tracker, tracking.RenderOptions{
		ShowFullDetails: query.ShowFullDetails(),
		Handlers:        h.handlers,
	})
}
