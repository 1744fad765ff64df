package commands

import (
	"context"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
)

// ViewWalletCommandHandler moves a tracker from FundsReleased to Completed.
type ViewWalletCommandHandler struct {
	uowFactory TrackerUoWFactory
	now        func() time.Time
}

func NewViewWalletCommandHandler(uowFactory TrackerUoWFactory) ViewWalletCommandHandler {
	return ViewWalletCommandHandler{
		uowFactory: uowFactory,
		now:        utcNow,
	}
}

func (h *ViewWalletCommandHandler) Handle(ctx context.Context, cmd ViewWalletCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return runTransition(ctx, h.uowFactory, h.now, cmd.TrackerID(),
		func(_ context.Context, tracker *tracking.Tracker, now time.Time) error {
			return tracker.ViewWallet(now)
		})
}
