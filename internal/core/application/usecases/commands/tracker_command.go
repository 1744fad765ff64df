package commands

import (
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/guard"
)

// trackerCommand is the common part of every command addressed to an
// existing tracker.
type trackerCommand struct {
	trackerID kernel.UUID

	guard guard.ConstructorGuard
}

func newTrackerCommand(trackerID kernel.UUID) (trackerCommand, error) {
	if err := trackerID.Validate(); err != nil {
		return trackerCommand{}, err
	}

	return trackerCommand{
		trackerID: trackerID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// TrackerID returns the tracker the command is addressed to.
func (c trackerCommand) TrackerID() kernel.UUID {
	return c.trackerID
}
