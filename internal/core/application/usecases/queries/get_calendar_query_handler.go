package queries

import (
	"context"
	"time"

	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetCalendarQueryHandler builds the month view from calendar_days and
// delivery_schedules. Cancelled schedules are not listed and do not count.
type GetCalendarQueryHandler struct {
	db *gorm.DB
}

func NewGetCalendarQueryHandler(db *gorm.DB) GetCalendarQueryHandler {
	return GetCalendarQueryHandler{db: db}
}

func (h GetCalendarQueryHandler) Handle(ctx context.Context, query GetCalendarQuery) (GetCalendarQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCalendarQueryResponse{}, err
	}

	first, err := kernel.NewDate(query.Year(), query.Month(), 1)
	if err != nil {
		return GetCalendarQueryResponse{}, err
	}
	daysInMonth := kernel.DaysIn(query.Year(), query.Month())
	last := first.AddDays(daysInMonth - 1)

	explicit, err := h.explicitDays(ctx, first, last)
	if err != nil {
		return GetCalendarQueryResponse{}, err
	}

	deliveries, err := h.deliveries(ctx, first, last)
	if err != nil {
		return GetCalendarQueryResponse{}, err
	}

	unscheduled, err := h.unscheduled(ctx)
	if err != nil {
		return GetCalendarQueryResponse{}, err
	}

	response := GetCalendarQueryResponse{
		Year:        query.Year(),
		Month:       query.Month(),
		Days:        make([]CalendarDayView, 0, daysInMonth),
		Unscheduled: unscheduled,
	}

	for i := range daysInMonth {
		date := first.AddDays(i)
		day, ok := explicit[date.String()]
		if !ok {
			day = calendar.DefaultDay(date)
		}

		booked := deliveries[date.String()]
		if booked == nil {
			booked = make([]ScheduleView, 0)
		}

		view := CalendarDayView{
			Date:            date,
			Settings:        day.Settings(),
			IsExplicit:      day.IsExplicit(),
			IsWeekend:       day.IsWeekend(),
			CurrentBookings: len(booked),
			EffectiveMax:    day.EffectiveMax(),
			HasCapacity:     day.HasCapacity(len(booked)),
			Deliveries:      booked,
		}
		response.Days = append(response.Days, view)

		response.Summary.TotalDeliveries += len(booked)
		if day.IsAvailable() && !day.IsHoliday() {
			response.Summary.AvailableDays++
		}
	}
	response.Summary.TotalDays = len(response.Days)
	response.Summary.Unscheduled = len(unscheduled)

	return response, nil
}

func (h GetCalendarQueryHandler) explicitDays(ctx context.Context, first, last kernel.Date) (map[string]*calendar.Day, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			date,
			max_deliveries,
			is_available,
			is_holiday,
			special_notes,
			updated_at
		FROM calendar_days
		WHERE date BETWEEN CAST(? AS date) AND CAST(? AS date)
	`, first.String(), last.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[string]*calendar.Day)
	for rows.Next() {
		var (
			date      time.Time
			settings  calendar.Settings
			updatedAt time.Time
		)
		if err = rows.Scan(
			&date,
			&settings.MaxDeliveries,
			&settings.IsAvailable,
			&settings.IsHoliday,
			&settings.SpecialNotes,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		day, restoreErr := calendar.RestoreDay(kernel.DateFromTime(date), settings, updatedAt)
		if restoreErr != nil {
			return nil, restoreErr
		}
		days[day.Date().String()] = day
	}

	return days, rows.Err()
}

func (h GetCalendarQueryHandler) deliveries(ctx context.Context, first, last kernel.Date) (map[string][]ScheduleView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+scheduleColumns+`
		FROM delivery_schedules s
		LEFT JOIN couriers c ON c.id = s.courier_id
		WHERE s.delivery_date BETWEEN CAST(? AS date) AND CAST(? AS date)
			AND s.status <> 'cancelled'
		ORDER BY s.delivery_date, s.time_slot, s.created_at
	`, first.String(), last.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byDate := make(map[string][]ScheduleView)
	for rows.Next() {
		view, scanErr := scanSchedule(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		key := view.DeliveryDate.String()
		byDate[key] = append(byDate[key], view)
	}

	return byDate, rows.Err()
}

func (h GetCalendarQueryHandler) unscheduled(ctx context.Context) ([]ScheduleView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT`+scheduleColumns+`
		FROM delivery_schedules s
		LEFT JOIN couriers c ON c.id = s.courier_id
		WHERE s.delivery_date IS NULL
			AND s.status NOT IN ('delivered', 'cancelled')
		ORDER BY s.created_at, s.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ScheduleView, 0)
	for rows.Next() {
		view, scanErr := scanSchedule(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, view)
	}

	return views, rows.Err()
}
