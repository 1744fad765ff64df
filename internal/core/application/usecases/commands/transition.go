package commands

import (
	"context"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
)

// transitionFunc mutates a loaded tracker. Returning an error rolls the unit
// of work back.
type transitionFunc func(ctx context.Context, tracker *tracking.Tracker, now time.Time) error

// runTransition loads a tracker, applies fn, persists the result and commits,
// all in one unit of work. The deferred rollback is a no-op after a
// successful commit.
func runTransition(
	ctx context.Context,
	uowFactory TrackerUoWFactory,
	now func() time.Time,
	trackerID kernel.UUID,
	fn transitionFunc,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TrackerRepository()
	tracker, err := repo.Get(ctx, trackerID)
	if err != nil {
		return err
	}

	if err = fn(ctx, tracker, now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, tracker); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
