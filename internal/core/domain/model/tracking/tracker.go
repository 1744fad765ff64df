package tracking

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"maps"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"
)

var (
	// ErrTrackerIsNotConstructed is returned for a Tracker that was created
	// neither by NewTracker nor by RestoreTracker.
	ErrTrackerIsNotConstructed = errors.New("Tracker must be created via NewTracker or RestoreTracker")

	// ErrDeliveryCodeMismatch is returned when the submitted delivery code does
	// not match the expected one. The tracker stays in Delivered and the seller
	// may retry.
	ErrDeliveryCodeMismatch = errors.New("invalid code")
)

// Tracker is the aggregate root that follows one order item through the
// fulfillment workflow.
//
// Invariants:
//   - the step is always valid and starts at OrderPlaced
//   - the step only moves forward, one step per accepted action
//   - every reached step has a timestamp
type Tracker struct {
	id      kernel.UUID
	orderID kernel.UUID
	item    OrderItem

	step Step

	// loadedStep is the step the tracker had when it was read from storage,
	// Unknown for a tracker that was never stored.
	loadedStep Step

	reachedAt map[Step]time.Time
	createdAt time.Time

	isConstructed bool
}

// NewTracker starts tracking an item in the OrderPlaced step.
func NewTracker(id, orderID kernel.UUID, item OrderItem, at time.Time) (*Tracker, error) {
	t := &Tracker{
		step:          OrderPlaced,
		reachedAt:     map[Step]time.Time{OrderPlaced: at},
		createdAt:     at,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setItem(item),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTracker rebuilds a tracker from storage. reachedAt must contain an
// entry for every step up to and including step.
func RestoreTracker(
	id, orderID kernel.UUID,
	item OrderItem,
	step Step,
	reachedAt map[Step]time.Time,
	createdAt time.Time,
) (*Tracker, error) {
	t := &Tracker{
		reachedAt:     make(map[Step]time.Time, len(reachedAt)),
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrderID(orderID),
		t.setItem(item),
		step.Validate(),
	); err != nil {
		return nil, err
	}

	for _, s := range Steps() {
		if s > step {
			break
		}
		at, ok := reachedAt[s]
		if !ok {
			return nil, errs.NewValueIsRequiredErrorWithCause(
				"reached at", fmt.Errorf("%s has no timestamp", s))
		}
		t.reachedAt[s] = at
	}

	t.step = step
	t.loadedStep = step
	return t, nil
}

func (t *Tracker) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTrackerIsNotConstructed
	}
	return nil
}

func (t *Tracker) IsEqual(other *Tracker) bool {
	return other != nil && t.id.IsEqual(other.id)
}

func (t *Tracker) ID() kernel.UUID {
	return t.id
}

func (t *Tracker) OrderID() kernel.UUID {
	return t.orderID
}

func (t *Tracker) Item() OrderItem {
	return t.item
}

func (t *Tracker) Step() Step {
	return t.step
}

// LoadedStep returns the step read from storage. Repositories use it to
// reject an update when another writer advanced the tracker in between.
func (t *Tracker) LoadedStep() Step {
	return t.loadedStep
}

func (t *Tracker) CreatedAt() time.Time {
	return t.createdAt
}

// ReachedAt returns when the tracker entered step.
func (t *Tracker) ReachedAt(step Step) (time.Time, bool) {
	at, ok := t.reachedAt[step]
	return at, ok
}

// Timeline returns a copy of every reached step with its timestamp.
func (t *Tracker) Timeline() map[Step]time.Time {
	return maps.Clone(t.reachedAt)
}

// MarkOutForDelivery handles "Mark as out for delivery" in OrderPlaced.
func (t *Tracker) MarkOutForDelivery(at time.Time) error {
	return t.apply(t.step.MarkOutForDelivery, at)
}

// MarkDelivered handles "Mark as Delivered" in OutForDelivery. The caller is
// responsible for issuing the delivery code the buyer will hand over.
func (t *Tracker) MarkDelivered(at time.Time) error {
	return t.apply(t.step.MarkDelivered, at)
}

// ConfirmDelivery checks the submitted code against the expected one and, on
// an exact match, releases the funds. A mismatch returns
// ErrDeliveryCodeMismatch and leaves the tracker in Delivered. An empty
// expected code never matches.
func (t *Tracker) ConfirmDelivery(submitted, expected string, at time.Time) error {
	if err := t.step.ValidateAction(ActionSubmitDeliveryCode); err != nil {
		return err
	}

	if expected == "" || subtle.ConstantTimeCompare([]byte(submitted), []byte(expected)) != 1 {
		return ErrDeliveryCodeMismatch
	}

	return t.apply(t.step.ReleaseFunds, at)
}

// ViewWallet handles "View Wallet" in FundsReleased and completes the tracker.
func (t *Tracker) ViewWallet(at time.Time) error {
	return t.apply(t.step.Complete, at)
}

func (t *Tracker) apply(transition func() (Step, error), at time.Time) error {
	next, err := transition()
	if err != nil {
		return err
	}

	t.step = next
	t.reachedAt[next] = at
	return nil
}

func (t *Tracker) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Tracker) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}

func (t *Tracker) setItem(item OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	t.item = item
	return nil
}
