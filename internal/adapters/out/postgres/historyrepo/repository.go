package historyrepo

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

type GormHistoryRepository struct {
	db *gorm.DB
}

func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

func (r *GormHistoryRepository) Append(ctx context.Context, entry delivery.HistoryEntry) error {
	if err := entry.ScheduleID.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ListBySchedule returns entries newest first, ties broken by insertion order.
func (r *GormHistoryRepository) ListBySchedule(ctx context.Context, scheduleID kernel.UUID) ([]delivery.HistoryEntry, error) {
	if err := scheduleID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID.Bytes()).
		Order("created_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]delivery.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
