package queries

import (
	"context"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveTrackersQueryHandler reads the active tracker list straight from
// the trackers table.
type GetActiveTrackersQueryHandler struct {
	db *gorm.DB
}

func NewGetActiveTrackersQueryHandler(db *gorm.DB) GetActiveTrackersQueryHandler {
	return GetActiveTrackersQueryHandler{db: db}
}

func (h GetActiveTrackersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveTrackersQuery,
) ([]GetActiveTrackersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			item_name,
			item_quantity,
			item_price,
			item_currency,
			step,
			created_at
		FROM trackers
		WHERE step != ?
		ORDER BY created_at, id
	`, int(tracking.Completed)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trackers := make([]GetActiveTrackersQueryResponse, 0)
	for rows.Next() {
		var resp GetActiveTrackersQueryResponse
		var id, orderID uuid.UUID
		var step int

		if err = rows.Scan(
			&id,
			&orderID,
			&resp.ItemName,
			&resp.Quantity,
			&resp.Price,
			&resp.Currency,
			&step,
			&resp.CreatedAt,
		); err != nil {
			return nil, err
		}

		if resp.TrackerID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}

		resp.Step = tracking.Step(step)
		if err = resp.Step.Validate(); err != nil {
			return nil, err
		}
		resp.CreatedAt = resp.CreatedAt.UTC()

		trackers = append(trackers, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trackers, nil
}
