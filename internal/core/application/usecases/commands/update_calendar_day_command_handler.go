package commands

import (
	"context"
	"time"

	"deliveryscheduler/internal/core/domain/model/calendar"
)

// UpdateCalendarDayCommandHandler is the only writer of calendar rows. It
// takes the same day lock as bookings, so a cap change and a booking on the
// same date never interleave. Lowering the cap below the current bookings is
// accepted; existing bookings stay and new ones are refused.
type UpdateCalendarDayCommandHandler struct {
	uowFactory CalendarUoWFactory
}

func NewUpdateCalendarDayCommandHandler(uowFactory CalendarUoWFactory) UpdateCalendarDayCommandHandler {
	return UpdateCalendarDayCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateCalendarDayCommandHandler) Handle(ctx context.Context, command UpdateCalendarDayCommand) (*calendar.Day, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	days := uow.CalendarRepository()
	if err := days.LockDay(ctx, command.Date()); err != nil {
		return nil, err
	}

	day, err := days.Get(ctx, command.Date())
	if err != nil {
		return nil, err
	}

	if err = day.Update(command.Settings(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = days.Save(ctx, day); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return day, nil
}
