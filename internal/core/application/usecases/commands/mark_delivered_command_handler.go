package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/ports"
)

// MarkDeliveredCommandHandler moves a tracker from OutForDelivery to Delivered,
// issues the delivery code and sends it to the buyer inside the same unit of
// work. A failed issue or send leaves the tracker untouched.
type MarkDeliveredCommandHandler struct {
	uowFactory TrackerUoWFactory
	codes      ports.DeliveryCodeStore
	notifier   ports.DeliveryCodeNotifier
	logger     *slog.Logger
	now        func() time.Time
}

func NewMarkDeliveredCommandHandler(
	uowFactory TrackerUoWFactory,
	codes ports.DeliveryCodeStore,
	notifier ports.DeliveryCodeNotifier,
	logger *slog.Logger,
) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
		logger:     logger.With("component", "mark_delivered_handler"),
		now:        utcNow,
	}
}

func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, h.now, cmd.TrackerID(),
		func(ctx context.Context, tracker *tracking.Tracker, now time.Time) error {
			if err := tracker.MarkDelivered(now); err != nil {
				return err
			}

			code, err := h.codes.Issue(ctx, tracker.ID())
			if err != nil {
				return err
			}

			if err = h.notifier.Send(ctx, tracker.ID(), tracker.OrderID(), code); err != nil {
				return err
			}

			h.logger.InfoContext(ctx, "Delivery code sent",
				"tracker_id", tracker.ID().String(),
				"order_id", tracker.OrderID().String())
			return nil
		})
}
