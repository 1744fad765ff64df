// Package trackerrepo persists tracker aggregates in the "trackers" table.
// Item fields are flattened into item_* columns and each step has its own
// reached-at timestamp column.
package trackerrepo

import (
	"time"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrackerDTO is the row layout of a tracker.
type TrackerDTO struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID   `gorm:"type:uuid;index"`
	Item      ItemDTO     `gorm:"embedded;embeddedPrefix:item_"`
	Step      int         `gorm:"type:smallint;index;not null"`
	Timeline  TimelineDTO `gorm:"embedded"`
	CreatedAt time.Time   `gorm:"not null;index"`
}

func (TrackerDTO) TableName() string {
	return "trackers"
}

// ItemDTO is the embedded order item snapshot.
type ItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid"`
	Name     string          `gorm:"not null"`
	Price    decimal.Decimal `gorm:"type:numeric(19,2);not null"`
	Currency string          `gorm:"type:char(3);not null"`
	Quantity int             `gorm:"not null"`
	ImageURL string          `gorm:"not null"`
	Color    string
	Size     string
}

// TimelineDTO holds the time each step was reached. Steps not reached yet
// are NULL.
type TimelineDTO struct {
	OrderPlacedAt    *time.Time
	OutForDeliveryAt *time.Time
	DeliveredAt      *time.Time
	FundsReleasedAt  *time.Time
	CompletedAt      *time.Time
}

func (t *TimelineDTO) columns() map[tracking.Step]**time.Time {
	return map[tracking.Step]**time.Time{
		tracking.OrderPlaced:    &t.OrderPlacedAt,
		tracking.OutForDelivery: &t.OutForDeliveryAt,
		tracking.Delivered:      &t.DeliveredAt,
		tracking.FundsReleased:  &t.FundsReleasedAt,
		tracking.Completed:      &t.CompletedAt,
	}
}

// stepColumns maps a step to its timestamp column name.
func stepColumns() map[tracking.Step]string {
	return map[tracking.Step]string{
		tracking.OrderPlaced:    "order_placed_at",
		tracking.OutForDelivery: "out_for_delivery_at",
		tracking.Delivered:      "delivered_at",
		tracking.FundsReleased:  "funds_released_at",
		tracking.Completed:      "completed_at",
	}
}

func fromDomain(t *tracking.Tracker) TrackerDTO {
	item := t.Item()

	dto := TrackerDTO{
		ID:      t.ID().Bytes(),
		OrderID: t.OrderID().Bytes(),
		Item: ItemDTO{
			ID:       item.ID().Bytes(),
			Name:     item.Name(),
			Price:    item.Price().Amount(),
			Currency: item.Price().Currency(),
			Quantity: item.Quantity(),
			ImageURL: item.ImageURL(),
			Color:    item.Color(),
			Size:     item.Size(),
		},
		Step:      int(t.Step()),
		CreatedAt: t.CreatedAt(),
	}

	columns := dto.Timeline.columns()
	for step, at := range t.Timeline() {
		if col, ok := columns[step]; ok {
			ts := at
			*col = &ts
		}
	}

	return dto
}

func toDomain(dto TrackerDTO) (*tracking.Tracker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	itemID, err := kernel.UUIDFromBytes(dto.Item.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Item.Price, dto.Item.Currency)
	if err != nil {
		return nil, err
	}

	item, err := tracking.NewOrderItem(itemID, dto.Item.Name, price, dto.Item.Quantity, dto.Item.ImageURL,
		tracking.WithColor(dto.Item.Color),
		tracking.WithSize(dto.Item.Size),
	)
	if err != nil {
		return nil, err
	}

	reachedAt := make(map[tracking.Step]time.Time)
	for step, col := range dto.Timeline.columns() {
		if *col != nil {
			reachedAt[step] = (**col).UTC()
		}
	}

	return tracking.RestoreTracker(id, orderID, item, tracking.Step(dto.Step), reachedAt, dto.CreatedAt.UTC())
}
