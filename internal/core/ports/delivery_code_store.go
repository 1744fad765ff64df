package ports

import (
	"context"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
)

// DeliveryCodeStore holds the code the buyer hands to the seller to confirm
// delivery of a tracked item.
type DeliveryCodeStore interface {
	// Issue creates (or replaces) the code for a tracker and returns it so it
	// can be sent to the buyer.
	Issue(ctx context.Context, trackerID kernel.UUID) (string, error)

	// Expected returns the code a submission must match. A missing or expired
	// code is returned as "" with a nil error.
	Expected(ctx context.Context, trackerID kernel.UUID) (string, error)

	// Consume invalidates the code after a successful confirmation.
	Consume(ctx context.Context, trackerID kernel.UUID) error
}

// DeliveryCodeNotifier hands an issued code to the buyer of the order.
type DeliveryCodeNotifier interface {
	Send(ctx context.Context, trackerID, orderID kernel.UUID, code string) error
}
