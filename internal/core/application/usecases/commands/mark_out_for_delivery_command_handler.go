package commands

import (
	"context"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
)

// MarkOutForDeliveryCommandHandler moves a tracker from OrderPlaced to
// OutForDelivery.
type MarkOutForDeliveryCommandHandler struct {
	uowFactory TrackerUoWFactory
	now        func() time.Time
}

func NewMarkOutForDeliveryCommandHandler(uowFactory TrackerUoWFactory) MarkOutForDeliveryCommandHandler {
	return MarkOutForDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

func (h *MarkOutForDeliveryCommandHandler) Handle(ctx context.Context, cmd MarkOutForDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, h.now, cmd.TrackerID(),
		func(_ context.Context, tracker *tracking.Tracker, now time.Time) error {
			return tracker.MarkOutForDelivery(now)
		})
}
