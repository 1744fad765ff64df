package commands

import (
	"errors"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/guard"
)

var ErrStartTrackingCommandIsNotConstructed = errors.New(
	"StartTrackingCommand must be created via NewStartTrackingCommand constructor",
)

// StartTrackingCommand starts the fulfillment workflow for one order item.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("15000", "NGN")
//	item, _ := tracking.NewOrderItem(itemID, "Sneakers", price, 1, imageURL)
//	cmd, err := NewStartTrackingCommand(kernel.NewUUID(), orderID, item)
//	if err != nil {
//	    return fmt.Errorf("invalid tracker data: %w", err)
//	}
//	err = handler.Handle(ctx, cmd)
type StartTrackingCommand struct { //nolint:recvcheck //using for validation
	trackerID kernel.UUID
	orderID   kernel.UUID
	item      tracking.OrderItem

	guard guard.ConstructorGuard
}

func NewStartTrackingCommand(trackerID, orderID kernel.UUID, item tracking.OrderItem) (StartTrackingCommand, error) {
	cmd := StartTrackingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackerID(trackerID),
		cmd.setOrderID(orderID),
		cmd.setItem(item),
	); err != nil {
		return StartTrackingCommand{}, err
	}

	return cmd, nil
}

func (c StartTrackingCommand) Validate() error {
	return c.guard.Validate(ErrStartTrackingCommandIsNotConstructed)
}

func (c StartTrackingCommand) TrackerID() kernel.UUID {
	return c.trackerID
}

func (c StartTrackingCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c StartTrackingCommand) Item() tracking.OrderItem {
	return c.item
}

func (c *StartTrackingCommand) setTrackerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.trackerID = id
	return nil
}

func (c *StartTrackingCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *StartTrackingCommand) setItem(item tracking.OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	c.item = item
	return nil
}
