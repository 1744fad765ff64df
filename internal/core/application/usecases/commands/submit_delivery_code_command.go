package commands

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
)

var ErrSubmitDeliveryCodeCommandIsNotConstructed = errors.New(
	"SubmitDeliveryCodeCommand must be created via NewSubmitDeliveryCodeCommand constructor",
)

// SubmitDeliveryCodeCommand carries the code the seller typed into the code
// modal. The code is kept verbatim; any value that is not exactly the
// expected code, including "", is a retryable mismatch rather than invalid
// input.
type SubmitDeliveryCodeCommand struct {
	trackerCommand
	code string
}

func NewSubmitDeliveryCodeCommand(trackerID kernel.UUID, code string) (SubmitDeliveryCodeCommand, error) {
	base, err := newTrackerCommand(trackerID)
	if err != nil {
		return SubmitDeliveryCodeCommand{}, err
	}
	return SubmitDeliveryCodeCommand{trackerCommand: base, code: code}, nil
}

func (c SubmitDeliveryCodeCommand) Validate() error {
	return c.guard.Validate(ErrSubmitDeliveryCodeCommandIsNotConstructed)
}

func (c SubmitDeliveryCodeCommand) Code() string {
	return c.code
}
