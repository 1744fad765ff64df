package tracking_test

import (
	"testing"
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestItem(t *testing.T) tracking.OrderItem {
	t.Helper()

	price, err := kernel.MoneyFromString("15000", "NGN")
	require.NoError(t, err)

	item, err := tracking.NewOrderItem(
		kernel.NewUUID(),
		"Leather Sneakers",
		price,
		2,
		"https://cdn.example.com/items/sneakers.png",
		tracking.WithColor("Black"),
		tracking.WithSize("42"),
	)
	require.NoError(t, err)
	return item
}

func newTestTracker(t *testing.T) *tracking.Tracker {
	t.Helper()

	tr, err := tracking.NewTracker(kernel.NewUUID(), kernel.NewUUID(), newTestItem(t), baseTime)
	require.NoError(t, err)
	return tr
}

// trackerAt returns a tracker advanced through the normal workflow to step.
func trackerAt(t *testing.T, step tracking.Step) *tracking.Tracker {
	t.Helper()

	tr := newTestTracker(t)
	at := baseTime
	for tr.Step() < step {
		at = at.Add(time.Hour)
		var err error
		switch tr.Step() {
		case tracking.OrderPlaced:
			err = tr.MarkOutForDelivery(at)
		case tracking.OutForDelivery:
			err = tr.MarkDelivered(at)
		case tracking.Delivered:
			err = tr.ConfirmDelivery("1234", "1234", at)
		case tracking.FundsReleased:
			err = tr.ViewWallet(at)
		default:
			t.Fatalf("cannot advance from %s", tr.Step())
		}
		require.NoError(t, err)
	}
	return tr
}
