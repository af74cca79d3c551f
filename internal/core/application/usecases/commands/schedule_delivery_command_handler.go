package commands

import (
	"context"
	"errors"
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/services"
	"deliveryscheduler/internal/pkg/errs"
)

// ScheduleDeliveryResult is the booked schedule together with the load of its
// day after the booking.
type ScheduleDeliveryResult struct {
	Schedule      *delivery.Schedule
	Bookings      int
	MaxDeliveries int
}

// ScheduleDeliveryCommandHandler books deliverables under the daily capacity.
//
// Locks are taken in a fixed order: source row, calendar day, schedule row.
// The capacity check runs after the day lock, so two bookings racing for the
// last slot of a date serialize and the second one fails.
//
// Example:
//
//	handler := NewScheduleDeliveryCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
//	var full *errs.CapacityExceededError
//	switch {
//	case errors.As(err, &full):
//	    fmt.Printf("%s is full (%d/%d)\n", full.Date, full.Current, full.Max)
//	case errors.Is(err, errs.ErrNotEligible):
//	    fmt.Println("payment is not verified yet")
//	case err != nil:
//	    return err
//	}
type ScheduleDeliveryCommandHandler struct {
	uowFactory SchedulingUoWFactory
	normalizer services.Normalizer
}

func NewScheduleDeliveryCommandHandler(uowFactory SchedulingUoWFactory) ScheduleDeliveryCommandHandler {
	return ScheduleDeliveryCommandHandler{
		uowFactory: uowFactory,
		normalizer: services.NewNormalizer(),
	}
}

// Handle returns ObjectNotFoundError for an unknown source or courier,
// NotEligibleError for a source that may not be delivered yet,
// CapacityExceededError for a full day and InvalidTransitionError when the
// active schedule is already in transit. Nothing is written on error.
func (h ScheduleDeliveryCommandHandler) Handle(
	ctx context.Context,
	command ScheduleDeliveryCommand,
) (ScheduleDeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return ScheduleDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ScheduleDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sources := uow.SourceRepository()
	calendar := uow.CalendarRepository()
	schedules := uow.ScheduleRepository()

	ref := command.Source()
	record, err := sources.GetForUpdate(ctx, ref)
	if err != nil {
		return ScheduleDeliveryResult{}, err
	}

	deliverable, err := h.normalizer.Normalize(record)
	if err != nil {
		return ScheduleDeliveryResult{}, err
	}

	if courierID := command.CourierID(); courierID != nil {
		if _, err = uow.CourierRepository().Get(ctx, *courierID); err != nil {
			return ScheduleDeliveryResult{}, err
		}
	}

	date := command.Date()
	if err = calendar.LockDay(ctx, date); err != nil {
		return ScheduleDeliveryResult{}, err
	}

	day, err := calendar.Get(ctx, date)
	if err != nil {
		return ScheduleDeliveryResult{}, err
	}

	bookings, err := schedules.CountBookingsOnDate(ctx, date, &ref)
	if err != nil {
		return ScheduleDeliveryResult{}, err
	}
	if err = day.CheckCapacity(bookings); err != nil {
		return ScheduleDeliveryResult{}, err
	}

	now := time.Now().UTC()
	schedule, err := schedules.FindActiveBySourceForUpdate(ctx, ref)

	var tr delivery.Transition
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		schedule, err = delivery.NewSchedule(kernel.NewUUID(), ref, deliverable.PublicReference, command.Booking(), now)
		if err != nil {
			return ScheduleDeliveryResult{}, err
		}
		tr = delivery.Transition{From: delivery.Pending, To: delivery.Scheduled}
		err = schedules.Add(ctx, schedule)
	case err != nil:
		return ScheduleDeliveryResult{}, err
	default:
		tr, err = schedule.Reschedule(command.Booking(), now)
		if err != nil {
			return ScheduleDeliveryResult{}, err
		}
		err = schedules.Update(ctx, schedule)
	}
	if err != nil {
		return ScheduleDeliveryResult{}, err
	}

	if err = propagate(
		ctx, sources, uow.HistoryRepository(), schedule, tr, command.Notes(), command.Actor(), now,
	); err != nil {
		return ScheduleDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ScheduleDeliveryResult{}, err
	}

	return ScheduleDeliveryResult{
		Schedule:      schedule,
		Bookings:      bookings + 1,
		MaxDeliveries: day.EffectiveMax(),
	}, nil
}
