package ports

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/kernel"
)

// CalendarRepository stores explicitly configured delivery days.
type CalendarRepository interface {
	// LockDay serializes capacity decisions for date until the transaction ends.
	// It works whether or not a row exists for the date.
	LockDay(ctx context.Context, date kernel.Date) error

	// Get returns the stored day, or calendar.DefaultDay when none is stored.
	Get(ctx context.Context, date kernel.Date) (*calendar.Day, error)

	// Save inserts or replaces the row of the day.
	Save(ctx context.Context, day *calendar.Day) error
}
