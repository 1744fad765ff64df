package commands

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
)

var ErrMarkOutForDeliveryCommandIsNotConstructed = errors.New(
	"MarkOutForDeliveryCommand must be created via NewMarkOutForDeliveryCommand constructor",
)

// MarkOutForDeliveryCommand is the seller's "Mark as out for delivery".
type MarkOutForDeliveryCommand struct {
	trackerCommand
}

func NewMarkOutForDeliveryCommand(trackerID kernel.UUID) (MarkOutForDeliveryCommand, error) {
	base, err := newTrackerCommand(trackerID)
	if err != nil {
		return MarkOutForDeliveryCommand{}, err
	}
	return MarkOutForDeliveryCommand{trackerCommand: base}, nil
}

func (c MarkOutForDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrMarkOutForDeliveryCommandIsNotConstructed)
}
