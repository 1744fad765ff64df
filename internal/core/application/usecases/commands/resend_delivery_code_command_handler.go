package commands

import (
	"context"
	"log/slog"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/ports"
)

// ResendDeliveryCodeCommandHandler issues a fresh code for a Delivered
// tracker and sends it to the buyer. The tracker itself is not modified.
type ResendDeliveryCodeCommandHandler struct {
	uowFactory TrackerUoWFactory
	codes      ports.DeliveryCodeStore
	notifier   ports.DeliveryCodeNotifier
	logger     *slog.Logger
}

func NewResendDeliveryCodeCommandHandler(
	uowFactory TrackerUoWFactory,
	codes ports.DeliveryCodeStore,
	notifier ports.DeliveryCodeNotifier,
	logger *slog.Logger,
) ResendDeliveryCodeCommandHandler {
	return ResendDeliveryCodeCommandHandler{
		uowFactory: uowFactory,
		codes:      codes,
		notifier:   notifier,
		logger:     logger.With("component", "resend_delivery_code_handler"),
	}
}

func (h *ResendDeliveryCodeCommandHandler) Handle(ctx context.Context, cmd ResendDeliveryCodeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tracker, err := uow.TrackerRepository().Get(ctx, cmd.TrackerID())
	if err != nil {
		return err
	}

	if err = tracker.Step().ValidateAction(tracking.ActionSubmitDeliveryCode); err != nil {
		return err
	}

	code, err := h.codes.Issue(ctx, tracker.ID())
	if err != nil {
		return err
	}

	if err = h.notifier.Send(ctx, tracker.ID(), tracker.OrderID(), code); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "Delivery code re-issued", "tracker_id", tracker.ID().String())
	return nil
}
