package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/ports"
)

// SubmitDeliveryCodeCommandHandler confirms delivery with the buyer's code and
// releases the funds.
//
// A wrong code returns tracking.ErrDeliveryCodeMismatch and changes nothing.
// There is no attempt counter.
type SubmitDeliveryCodeCommandHandler struct {
	uowFactory TrackerUoWFactory
	codes      ports.DeliveryCodeStore
	logger     *slog.Logger
	now        func() time.Time
}

func NewSubmitDeliveryCodeCommandHandler(
	uowFactory TrackerUoWFactory,
	codes ports.DeliveryCodeStore,
	logger *slog.Logger,
) SubmitDeliveryCodeCommandHandler {
	return SubmitDeliveryCodeCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		logger:     logger.With("component", "submit_delivery_code_handler"),
		now:        utcNow,
	}
}

func (h *SubmitDeliveryCodeCommandHandler) Handle(ctx context.Context, cmd SubmitDeliveryCodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := runTransition(ctx, h.uowFactory, h.now, cmd.TrackerID(),
		func(ctx context.Context, tracker *tracking.Tracker, now time.Time) error {
			if err := tracker.Step().ValidateAction(tracking.ActionSubmitDeliveryCode); err != nil {
				return err
			}

			expected, err := h.codes.Expected(ctx, tracker.ID())
			if err != nil {
				return err
			}

			return tracker.ConfirmDelivery(cmd.Code(), expected, now)
		})
	if err != nil {
		return err
	}

	// The tracker has left Delivered, so a leftover code can no longer be used.
	if err = h.codes.Consume(ctx, cmd.TrackerID()); err != nil {
		h.logger.WarnContext(ctx, "Failed to consume delivery code",
			"tracker_id", cmd.TrackerID().String(), "error", err)
	}

	return nil
}
