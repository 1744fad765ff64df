package tracking_test

import (
	"testing"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	price, err := kernel.MoneyFromString("2500.00", "NGN")
	require.NoError(t, err)

	t.Run("should create item with optional variants", func(t *testing.T) {
		id := kernel.NewUUID()

		item, itemErr := tracking.NewOrderItem(id, "  T-Shirt ", price, 3, "https://cdn.example.com/t.png",
			tracking.WithColor("Red"), tracking.WithSize(" XL "))

		require.NoError(t, itemErr)
		require.NoError(t, item.Validate())
		assert.True(t, id.IsEqual(item.ID()))
		assert.Equal(t, "T-Shirt", item.Name())
		assert.Equal(t, 3, item.Quantity())
		assert.Equal(t, "Red", item.Color())
		assert.Equal(t, "XL", item.Size())
	})

	t.Run("should leave variants empty when not given", func(t *testing.T) {
		item, itemErr := tracking.NewOrderItem(kernel.NewUUID(), "Mug", price, 1, "http://cdn.example.com/m.png")

		require.NoError(t, itemErr)
		assert.Empty(t, item.Color())
		assert.Empty(t, item.Size())
	})

	t.Run("should compute subtotal", func(t *testing.T) {
		item, itemErr := tracking.NewOrderItem(kernel.NewUUID(), "Mug", price, 4, "https://cdn.example.com/m.png")
		require.NoError(t, itemErr)

		subtotal, subErr := item.Subtotal()

		require.NoError(t, subErr)
		assert.Equal(t, "10000.00 NGN", subtotal.String())
	})

	t.Run("should report every invalid field", func(t *testing.T) {
		_, itemErr := tracking.NewOrderItem(kernel.UUID{}, " ", kernel.Money{}, 0, "")

		require.Error(t, itemErr)
		require.ErrorIs(t, itemErr, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, itemErr, kernel.ErrMoneyIsNotConstructed)
		require.ErrorIs(t, itemErr, errs.ErrValueIsInvalid)
		assert.Contains(t, itemErr.Error(), "item name")
		assert.Contains(t, itemErr.Error(), "image URL")
		assert.Contains(t, itemErr.Error(), "0 is not greater than 0")
	})

	t.Run("should reject relative or non-http image URLs", func(t *testing.T) {
		for _, u := range []string{"/images/a.png", "ftp://cdn.example.com/a.png", "https://"} {
			_, itemErr := tracking.NewOrderItem(kernel.NewUUID(), "Mug", price, 1, u)

			require.ErrorIs(t, itemErr, errs.ErrValueIsInvalid, u)
		}
	})
}

func TestOrderItem_ZeroValueIsInvalid(t *testing.T) {
	var item tracking.OrderItem

	require.ErrorIs(t, item.Validate(), tracking.ErrOrderItemIsNotConstructed)
}
