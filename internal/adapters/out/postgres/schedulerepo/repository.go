package schedulerepo

import (
	"context"
	"errors"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormScheduleRepository implements ports.ScheduleRepository using GORM.
type GormScheduleRepository struct {
	db *gorm.DB
}

func NewGormScheduleRepository(db *gorm.DB) *GormScheduleRepository {
	return &GormScheduleRepository{db: db}
}

// Add inserts a new schedule.
func (r *GormScheduleRepository) Add(ctx context.Context, aggregate *delivery.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes every column of an existing schedule.
func (r *GormScheduleRepository) Update(ctx context.Context, aggregate *delivery.Schedule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ScheduleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery schedule", aggregate.ID().String())
	}

	return nil
}

func (r *GormScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormScheduleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormScheduleRepository) get(db *gorm.DB, id kernel.UUID) (*delivery.Schedule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery schedule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormScheduleRepository) FindActiveBySourceForUpdate(ctx context.Context, ref source.Ref) (*delivery.Schedule, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("source_kind = ? AND source_id = ?", ref.Kind.String(), ref.ID).
		Where("status NOT IN ?", terminalStatuses()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active delivery schedule", ref.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormScheduleRepository) FindLatestBySourceForUpdate(ctx context.Context, ref source.Ref) (*delivery.Schedule, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var dto ScheduleDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("source_kind = ? AND source_id = ?", ref.Kind.String(), ref.ID).
		Order("created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery schedule", ref.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountBookingsOnDate counts non-cancelled schedules on date. Delivered
// schedules keep their slot.
func (r *GormScheduleRepository) CountBookingsOnDate(
	ctx context.Context,
	date kernel.Date,
	exclude *source.Ref,
) (int, error) {
	if err := date.Validate(); err != nil {
		return 0, err
	}

	q := r.db.WithContext(ctx).
		Model(&ScheduleDTO{}).
		Where("delivery_date = CAST(? AS date)", date.String()).
		Where("status <> ?", delivery.Cancelled.String())
	if exclude != nil {
		q = q.Where("NOT (source_kind = ? AND source_id = ? AND status NOT IN ?)",
			exclude.Kind.String(), exclude.ID, terminalStatuses())
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func terminalStatuses() []string {
	return []string{delivery.Delivered.String(), delivery.Cancelled.String()}
}
