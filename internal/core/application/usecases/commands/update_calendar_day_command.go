package commands

import (
	"errors"
	"strings"

	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/pkg/errs"
	"deliveryscheduler/internal/pkg/guard"
)

var ErrUpdateCalendarDayCommandIsNotConstructed = errors.New(
	"UpdateCalendarDayCommand must be created via NewUpdateCalendarDayCommand constructor",
)

// UpdateCalendarDayCommand replaces the operator settings of one date.
type UpdateCalendarDayCommand struct { //nolint:recvcheck //using for validation
	date     kernel.Date
	settings calendar.Settings

	guard guard.ConstructorGuard
}

func NewUpdateCalendarDayCommand(date kernel.Date, settings calendar.Settings) (UpdateCalendarDayCommand, error) {
	cmd := UpdateCalendarDayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDate(date),
		cmd.setSettings(settings),
	); err != nil {
		return UpdateCalendarDayCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCalendarDayCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCalendarDayCommandIsNotConstructed)
}

func (c UpdateCalendarDayCommand) Date() kernel.Date {
	return c.date
}

func (c UpdateCalendarDayCommand) Settings() calendar.Settings {
	return c.settings
}

func (c *UpdateCalendarDayCommand) setDate(date kernel.Date) error {
	if err := date.Validate(); err != nil {
		return err
	}
	c.date = date
	return nil
}

func (c *UpdateCalendarDayCommand) setSettings(s calendar.Settings) error {
	if s.MaxDeliveries < 0 || s.MaxDeliveries > calendar.MaxDeliveriesLimit {
		return errs.NewValueIsOutOfRangeError("max deliveries", s.MaxDeliveries, 0, calendar.MaxDeliveriesLimit)
	}
	s.SpecialNotes = strings.TrimSpace(s.SpecialNotes)
	c.settings = s
	return nil
}
