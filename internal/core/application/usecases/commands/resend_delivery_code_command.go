package commands

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
)

var ErrResendDeliveryCodeCommandIsNotConstructed = errors.New(
	"ResendDeliveryCodeCommand must be created via NewResendDeliveryCodeCommand constructor",
)

// ResendDeliveryCodeCommand re-issues the delivery code of a tracker waiting
// in Delivered, e.g. after the previous code expired.
type ResendDeliveryCodeCommand struct {
	trackerCommand
}

func NewResendDeliveryCodeCommand(trackerID kernel.UUID) (ResendDeliveryCodeCommand, error) {
	base, err := newTrackerCommand(trackerID)
	if err != nil {
		return ResendDeliveryCodeCommand{}, err
	}
	return ResendDeliveryCodeCommand{trackerCommand: base}, nil
}

func (c ResendDeliveryCodeCommand) Validate() error {
	return c.guard.Validate(ErrResendDeliveryCodeCommandIsNotConstructed)
}
