package queries

import (
	"context"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"

	"gorm.io/gorm"
)

type GetStepSummaryQueryHandler struct {
	db *gorm.DB
}

func NewGetStepSummaryQueryHandler(db *gorm.DB) GetStepSummaryQueryHandler {
	return GetStepSummaryQueryHandler{db: db}
}

func (h GetStepSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetStepSummaryQuery,
) (GetStepSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStepSummaryQueryResponse{}, err
	}

	var rows []struct {
		Step  int
		Total int64
	}
	if err := h.db.WithContext(ctx).
		Raw(`SELECT step, COUNT(*) AS total FROM trackers GROUP BY step`).
		Scan(&rows).Error; err != nil {
		return GetStepSummaryQueryResponse{}, err
	}

	resp := GetStepSummaryQueryResponse{Counts: make(map[tracking.Step]int64, len(tracking.Steps()))}
	for _, step := range tracking.Steps() {
		resp.Counts[step] = 0
	}
	for _, row := range rows {
		step := tracking.Step(row.Step)
		if err := step.Validate(); err != nil {
			return GetStepSummaryQueryResponse{}, err
		}
		resp.Counts[step] = row.Total
	}

	return resp, nil
}
