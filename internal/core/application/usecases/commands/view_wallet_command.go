package commands

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
)

var ErrViewWalletCommandIsNotConstructed = errors.New(
	"ViewWalletCommand must be created via NewViewWalletCommand constructor",
)

// ViewWalletCommand is the seller's "View Wallet" once funds are released.
// It completes the tracker.
type ViewWalletCommand struct {
	trackerCommand
}

func NewViewWalletCommand(trackerID kernel.UUID) (ViewWalletCommand, error) {
	base, err := newTrackerCommand(trackerID)
	if err != nil {
		return ViewWalletCommand{}, err
	}
	return ViewWalletCommand{trackerCommand: base}, nil
}

func (c ViewWalletCommand) Validate() error {
	return c.guard.Validate(ErrViewWalletCommandIsNotConstructed)
}
