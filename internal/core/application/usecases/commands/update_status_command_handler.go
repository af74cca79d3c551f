package commands

import (
	"context"
	"errors"
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/core/domain/services"
	"deliveryscheduler/internal/core/ports"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/rs/zerolog"
)

// UpdateStatusResult is the schedule after the change and the transition that was applied.
type UpdateStatusResult struct {
	Schedule   *delivery.Schedule
	Transition delivery.Transition
}

// UpdateStatusCommandHandler applies status transitions. The schedule, the
// mirror on its source row and the history entry are written in one
// transaction; the payment ledger is told about delivered and cancelled
// deliveries after that transaction commits.
type UpdateStatusCommandHandler struct {
	uowFactory StatusUoWFactory
	ledger     ports.PaymentLedger
	normalizer services.Normalizer
	logger     zerolog.Logger
}

func NewUpdateStatusCommandHandler(
	uowFactory StatusUoWFactory,
	ledger ports.PaymentLedger,
	logger zerolog.Logger,
) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
		normalizer: services.NewNormalizer(),
		logger:     logger.With().Str("component", "update_status").Logger(),
	}
}

// Handle returns ObjectNotFoundError when the target does not exist,
// InvalidTransitionError when a non-privileged actor asks for a move outside
// the lifecycle and CapacityExceededError when a schedule created for the
// source would overbook its mirrored date.
func (h UpdateStatusCommandHandler) Handle(ctx context.Context, command UpdateStatusCommand) (UpdateStatusResult, error) {
	if err := command.Validate(); err != nil {
		return UpdateStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		schedule *delivery.Schedule
		created  bool
		err      error
	)
	if id, ok := command.ScheduleID(); ok {
		schedule, err = h.lockByID(ctx, uow, id)
	} else {
		ref, _ := command.Source()
		schedule, created, err = h.lockBySource(ctx, uow, ref, command.Status())
	}
	if err != nil {
		return UpdateStatusResult{}, err
	}

	// Taken after the locks so history timestamps follow commit order.
	now := time.Now().UTC()

	tr, err := schedule.ChangeStatus(command.Status(), command.Notes(), command.Actor(), now)
	if err != nil {
		return UpdateStatusResult{}, err
	}

	schedules := uow.ScheduleRepository()
	if created {
		err = schedules.Add(ctx, schedule)
	} else {
		err = schedules.Update(ctx, schedule)
	}
	if err != nil {
		return UpdateStatusResult{}, err
	}

	if err = propagate(
		ctx, uow.SourceRepository(), uow.HistoryRepository(), schedule, tr, command.Notes(), command.Actor(), now,
	); err != nil {
		return UpdateStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateStatusResult{}, err
	}

	if tr.Forced {
		h.logger.Warn().
			Str("schedule_id", schedule.ID().String()).
			Str("actor_id", command.Actor().ID).
			Str("from", tr.From.String()).
			Str("to", tr.To.String()).
			Msg(tr.Warning)
	}

	h.notifyLedger(ctx, schedule.Source(), tr)

	return UpdateStatusResult{Schedule: schedule, Transition: tr}, nil
}

// lockByID reads the schedule without a lock to learn its source, then locks
// the source row before the schedule row, the same order bookings use.
func (h UpdateStatusCommandHandler) lockByID(ctx context.Context, uow StatusUoW, id kernel.UUID) (*delivery.Schedule, error) {
	schedules := uow.ScheduleRepository()

	schedule, err := schedules.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err = uow.SourceRepository().GetForUpdate(ctx, schedule.Source()); err != nil {
		return nil, err
	}

	return schedules.GetForUpdate(ctx, id)
}

// lockBySource returns created=true when the source had no schedule and a
// pending one was materialized for it. A schedule materialized on the date
// mirrored from the source takes a booking on that date, so it is admitted
// under the day lock like any other booking.
func (h UpdateStatusCommandHandler) lockBySource(
	ctx context.Context,
	uow StatusUoW,
	ref source.Ref,
	status delivery.Status,
) (*delivery.Schedule, bool, error) {
	record, err := uow.SourceRepository().GetForUpdate(ctx, ref)
	if err != nil {
		return nil, false, err
	}

	schedule, err := uow.ScheduleRepository().FindLatestBySourceForUpdate(ctx, ref)
	if err == nil {
		return schedule, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) || !status.IsProgression() {
		return nil, false, err
	}

	deliverable, err := h.normalizer.Normalize(record)
	if err != nil {
		return nil, false, err
	}

	if deliverable.MirrorDate != nil {
		if err = h.admit(ctx, uow, *deliverable.MirrorDate, ref); err != nil {
			return nil, false, err
		}
	}

	schedule, err = delivery.NewPendingSchedule(
		kernel.NewUUID(), ref, deliverable.PublicReference, deliverable.MirrorDate, time.Now().UTC(),
	)
	if err != nil {
		return nil, false, err
	}
	return schedule, true, nil
}

// admit returns CapacityExceededError when date has no free slot left.
func (h UpdateStatusCommandHandler) admit(ctx context.Context, uow StatusUoW, date kernel.Date, ref source.Ref) error {
	calendar := uow.CalendarRepository()
	if err := calendar.LockDay(ctx, date); err != nil {
		return err
	}

	day, err := calendar.Get(ctx, date)
	if err != nil {
		return err
	}

	bookings, err := uow.ScheduleRepository().CountBookingsOnDate(ctx, date, &ref)
	if err != nil {
		return err
	}
	return day.CheckCapacity(bookings)
}

func (h UpdateStatusCommandHandler) notifyLedger(ctx context.Context, ref source.Ref, tr delivery.Transition) {
	if tr.From == tr.To {
		return
	}

	var err error
	switch tr.To {
	case delivery.Delivered:
		err = h.ledger.MarkCompleted(ctx, ref)
	case delivery.Cancelled:
		err = h.ledger.MarkCancelled(ctx, ref)
	default:
		return
	}

	if err != nil {
		h.logger.Error().Err(err).
			Str("source", ref.String()).
			Str("status", tr.To.String()).
			Msg("payment ledger notification failed")
	}
}
