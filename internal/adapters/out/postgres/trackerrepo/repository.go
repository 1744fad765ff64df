package trackerrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/kernel"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackerRepository implements ports.TrackerRepository using GORM.
type GormTrackerRepository struct {
	db *gorm.DB
}

// NewGormTrackerRepository creates a repository on db, which is either a
// plain connection or an open transaction.
func NewGormTrackerRepository(db *gorm.DB) *GormTrackerRepository {
	return &GormTrackerRepository{db: db}
}

// Add inserts a new tracker. An existing ID is reported as
// ObjectAlreadyExistsError when db was opened with TranslateError.
func (r *GormTrackerRepository) Add(ctx context.Context, aggregate *tracking.Tracker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsError("tracker", aggregate.ID().String())
		}
		return err
	}

	return nil
}

// Update writes the step and timeline of a loaded tracker. The row is only
// touched if it is still in the step the tracker was loaded in; otherwise a
// concurrent transition won and ErrTransitionIsInvalid is returned.
func (r *GormTrackerRepository) Update(ctx context.Context, aggregate *tracking.Tracker) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	values := map[string]any{"step": dto.Step}
	columns := dto.Timeline.columns()
	for step, name := range stepColumns() {
		if ts := *columns[step]; ts != nil {
			values[name] = *ts
		}
	}

	result := r.db.WithContext(ctx).
		Model(&TrackerDTO{}).
		Where("id = ? AND step = ?", dto.ID, int(aggregate.LoadedStep())).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return r.staleUpdateError(ctx, aggregate)
	}

	return nil
}

// Get loads a tracker by ID.
func (r *GormTrackerRepository) Get(ctx context.Context, id kernel.UUID) (*tracking.Tracker, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("tracker", id.String(), err)
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormTrackerRepository) staleUpdateError(ctx context.Context, aggregate *tracking.Tracker) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&TrackerDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Count(&count).Error; err != nil {
		return err
	}

	if count == 0 {
		return errs.NewObjectNotFoundError("tracker", aggregate.ID().String())
	}

	return errs.NewTransitionIsInvalidErrorWithCause(
		aggregate.LoadedStep().String(),
		fmt.Sprintf("move to %s", aggregate.Step()),
		errs.ErrConcurrentUpdate,
	)
}
