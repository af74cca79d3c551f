package calendarrepo

import (
	"context"
	"errors"

	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/kernel"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockNamespace is the first key of the two-key advisory lock taken per date.
const lockNamespace = 0x0DE1

// GormCalendarRepository implements ports.CalendarRepository using GORM.
type GormCalendarRepository struct {
	db *gorm.DB
}

func NewGormCalendarRepository(db *gorm.DB) *GormCalendarRepository {
	return &GormCalendarRepository{db: db}
}

// LockDay takes a transaction-scoped advisory lock keyed on the date and then
// row-locks the stored day, if any. Dates without a row are covered by the
// advisory lock alone. Outside a transaction the lock is released immediately.
func (r *GormCalendarRepository) LockDay(ctx context.Context, date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec("SELECT pg_advisory_xact_lock(?, ?)", lockNamespace, lockKey(date)).Error; err != nil {
		return err
	}

	var rows []DayDTO
	return db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = CAST(? AS date)", date.String()).
		Find(&rows).Error
}

// Get returns the stored day or the default for date.
func (r *GormCalendarRepository) Get(ctx context.Context, date kernel.Date) (*calendar.Day, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}

	var dto DayDTO
	err := r.db.WithContext(ctx).Where("date = CAST(? AS date)", date.String()).First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calendar.DefaultDay(date), nil
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the day.
func (r *GormCalendarRepository) Save(ctx context.Context, day *calendar.Day) error {
	if err := day.Validate(); err != nil {
		return err
	}

	dto := fromDomain(day)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"max_deliveries", "is_available", "is_holiday", "special_notes", "updated_at"}),
		}).
		Create(&dto).Error
}

func lockKey(date kernel.Date) int {
	return date.Year()*10000 + int(date.Month())*100 + date.Day()
}
