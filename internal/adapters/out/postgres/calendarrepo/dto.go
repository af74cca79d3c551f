// Package calendarrepo persists explicitly configured delivery days.
// Dates without a row fall back to calendar.DefaultDay and are never written.
package calendarrepo

import (
	"time"

	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/kernel"
)

// DayDTO is a row of calendar_days. No column has a GORM default tag; GORM
// omits zero values of defaulted fields on insert.
type DayDTO struct {
	Date          time.Time `gorm:"type:date;primaryKey"`
	MaxDeliveries int       `gorm:"not null"`
	IsAvailable   bool      `gorm:"not null"`
	IsHoliday     bool      `gorm:"not null"`
	SpecialNotes  string    `gorm:"type:text"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (DayDTO) TableName() string {
	return "calendar_days"
}

func fromDomain(day *calendar.Day) DayDTO {
	s := day.Settings()
	return DayDTO{
		Date:          day.Date().Time(),
		MaxDeliveries: s.MaxDeliveries,
		IsAvailable:   s.IsAvailable,
		IsHoliday:     s.IsHoliday,
		SpecialNotes:  s.SpecialNotes,
		UpdatedAt:     day.UpdatedAt(),
	}
}

func toDomain(dto DayDTO) (*calendar.Day, error) {
	return calendar.RestoreDay(kernel.DateFromTime(dto.Date), calendar.Settings{
		MaxDeliveries: dto.MaxDeliveries,
		IsAvailable:   dto.IsAvailable,
		IsHoliday:     dto.IsHoliday,
		SpecialNotes:  dto.SpecialNotes,
	}, dto.UpdatedAt)
}
