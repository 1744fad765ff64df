package commands

import (
	"context"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
)

// StartTrackingCommandHandler creates a tracker in the OrderPlaced step.
type StartTrackingCommandHandler struct {
	uowFactory TrackerUoWFactory
	now        func() time.Time
}

func NewStartTrackingCommandHandler(uowFactory TrackerUoWFactory) StartTrackingCommandHandler {
	return StartTrackingCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

// Handle persists a new tracker for the command's order item.
func (h *StartTrackingCommandHandler) Handle(ctx context.Context, cmd StartTrackingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tracker, err := tracking.NewTracker(cmd.TrackerID(), cmd.OrderID(), cmd.Item(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TrackerRepository().Add(ctx, tracker); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
