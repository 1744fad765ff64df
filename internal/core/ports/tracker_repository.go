// Package ports defines the contracts between the tracker domain and its
// infrastructure: persistence, transactions and delivery-code storage.
package ports

import (
	"context"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
)

// TrackerRepository defines the persistence contract for tracker aggregates.
type TrackerRepository interface {
	// Add persists a new tracker. At most one tracker may exist per order item.
	Add(ctx context.Context, aggregate *tracking.Tracker) error

	// Update persists a transition. It must fail with errs.ErrTransitionIsInvalid
	// when the stored step no longer equals aggregate.LoadedStep(), so two
	// concurrent actions cannot both succeed.
	Update(ctx context.Context, aggregate *tracking.Tracker) error

	// Get returns the tracker or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*tracking.Tracker, error)
}
