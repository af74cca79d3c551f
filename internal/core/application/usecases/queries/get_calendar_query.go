package queries

import (
	"errors"
	"time"

	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/pkg/errs"
	"deliveryscheduler/internal/pkg/guard"
)

const (
	minCalendarYear = 2000
	maxCalendarYear = 2100
)

var ErrGetCalendarQueryIsNotConstructed = errors.New(
	"GetCalendarQuery must be created via NewGetCalendarQuery constructor",
)

// GetCalendarQuery asks for every day of one month with its settings and bookings.
//
// Example:
//
//	query, err := NewGetCalendarQuery(2025, time.March)
//	if err != nil {
//	    return err
//	}
//	month, err := handler.Handle(ctx, query)
//	for _, day := range month.Days {
//	    fmt.Printf("%s %d/%d\n", day.Date, day.CurrentBookings, day.EffectiveMax)
//	}
type GetCalendarQuery struct {
	year  int
	month time.Month

	guard guard.ConstructorGuard
}

func NewGetCalendarQuery(year int, month time.Month) (GetCalendarQuery, error) {
	var yearErr, monthErr error
	if year < minCalendarYear || year > maxCalendarYear {
		yearErr = errs.NewValueIsOutOfRangeError("year", year, minCalendarYear, maxCalendarYear)
	}
	if month < time.January || month > time.December {
		monthErr = errs.NewValueIsOutOfRangeError("month", int(month), 1, 12)
	}
	if err := errors.Join(yearErr, monthErr); err != nil {
		return GetCalendarQuery{}, err
	}

	return GetCalendarQuery{
		year:  year,
		month: month,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetCalendarQuery) Validate() error {
	return q.guard.Validate(ErrGetCalendarQueryIsNotConstructed)
}

func (q GetCalendarQuery) Year() int {
	return q.year
}

func (q GetCalendarQuery) Month() time.Month {
	return q.month
}

// GetCalendarQueryResponse lists the days of the month in ascending order.
// Unscheduled holds the active schedules that have no delivery date, which
// appear when a status is set on a source that was never booked. They belong
// to no month, so every month lists them.
type GetCalendarQueryResponse struct {
	Year        int
	Month       time.Month
	Days        []CalendarDayView
	Unscheduled []ScheduleView
	Summary     CalendarSummary
}

// CalendarDayView is one date with its settings, explicit or default.
// CurrentBookings counts the schedules listed in Deliveries.
type CalendarDayView struct {
	Date            kernel.Date
	Settings        calendar.Settings
	IsExplicit      bool
	IsWeekend       bool
	CurrentBookings int
	EffectiveMax    int
	HasCapacity     bool
	Deliveries      []ScheduleView
}

type CalendarSummary struct {
	TotalDays       int
	TotalDeliveries int
	// AvailableDays counts days that are open and not holidays.
	AvailableDays int
	Unscheduled   int
}
