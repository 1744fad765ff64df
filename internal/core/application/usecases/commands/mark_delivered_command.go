package commands

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand is the seller's "Mark as Delivered". The tracker moves
// to Delivered and a delivery code is issued for the buyer.
type MarkDeliveredCommand struct {
	trackerCommand
}

func NewMarkDeliveredCommand(trackerID kernel.UUID) (MarkDeliveredCommand, error) {
	base, err := newTrackerCommand(trackerID)
	if err != nil {
		return MarkDeliveredCommand{}, err
	}
	return MarkDeliveredCommand{trackerCommand: base}, nil
}

func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}
