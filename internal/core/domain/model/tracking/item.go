package tracking

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed is returned for an OrderItem that was not
// created via NewOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is the snapshot of the ordered product a tracker follows. It is
// immutable once created.
type OrderItem struct { //nolint:recvcheck //using for validation
	id       kernel.UUID
	name     string
	price    kernel.Money
	quantity int
	imageURL string
	color    string
	size     string

	guard guard.ConstructorGuard
}

// ItemOption sets an optional OrderItem attribute.
type ItemOption func(*OrderItem)

// WithColor sets the item colour variant.
func WithColor(color string) ItemOption {
	return func(i *OrderItem) {
		i.color = strings.TrimSpace(color)
	}
}

// WithSize sets the item size variant.
func WithSize(size string) ItemOption {
	return func(i *OrderItem) {
		i.size = strings.TrimSpace(size)
	}
}

// NewOrderItem validates the item snapshot. Name and image URL are required,
// quantity must be positive.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("15000", "NGN")
//	item, err := tracking.NewOrderItem(kernel.NewUUID(), "Sneakers", price, 2,
//	    "https://cdn.example.com/sneakers.png", tracking.WithSize("42"))
func NewOrderItem(
	id kernel.UUID,
	name string,
	price kernel.Money,
	quantity int,
	imageURL string,
	opts ...ItemOption,
) (OrderItem, error) {
	item := OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setQuantity(quantity),
		item.setImageURL(imageURL),
	); err != nil {
		return OrderItem{}, err
	}

	for _, opt := range opts {
		opt(&item)
	}

	return item, nil
}

func (i OrderItem) Validate() error {
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i OrderItem) ID() kernel.UUID {
	return i.id
}

func (i OrderItem) Name() string {
	return i.name
}

func (i OrderItem) Price() kernel.Money {
	return i.price
}

func (i OrderItem) Quantity() int {
	return i.quantity
}

func (i OrderItem) ImageURL() string {
	return i.imageURL
}

// Color returns the colour variant, or "" when the item has none.
func (i OrderItem) Color() string {
	return i.color
}

// Size returns the size variant, or "" when the item has none.
func (i OrderItem) Size() string {
	return i.size
}

// Subtotal is price × quantity.
func (i OrderItem) Subtotal() (kernel.Money, error) {
	return i.price.Mul(i.quantity)
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *OrderItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	i.price = price
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setImageURL(imageURL string) error {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return errs.NewValueIsRequiredError("image URL")
	}

	u, err := url.Parse(imageURL)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("image URL", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValueIsInvalidErrorWithCause("image URL", fmt.Errorf("%q is not an absolute http(s) URL", imageURL))
	}

	i.imageURL = imageURL
	return nil
}
