package commands_test

import (
	"errors"
	"testing"
	"time"

	"deliveryscheduler/internal/core/application/usecases/commands"
	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/courier"
	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	standardRef    = source.Ref{Kind: source.Standard, ID: "42"}
	eligibleRecord = source.StandardOrder{ID: "42", OrderNumber: "ORD-42", Status: "Order Received"}
	operator       = delivery.Actor{ID: "u-1", Name: "Ana", Role: "customer_service"}
	staff          = delivery.Actor{ID: "u-2", Name: "Ben", Role: "staff"}
)

func mustDate(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newScheduleCommand(t *testing.T, date kernel.Date, courierID *kernel.UUID) commands.ScheduleDeliveryCommand {
	t.Helper()
	cmd, err := commands.NewScheduleDeliveryCommand(standardRef, date, "morning", courierID, "call first", "", operator)
	require.NoError(t, err)
	return cmd
}

func schedulingFactory(r repos) *MockSchedulingUoWFactory {
	factory := new(MockSchedulingUoWFactory)
	factory.On("Create").Return(r.uow).Once()
	return factory
}

func TestScheduleDeliveryCommandHandler_Handle_NewSchedule(t *testing.T) {
	ctx := t.Context()
	date := mustDate(t, "2025-03-10")
	cmd := newScheduleCommand(t, date, nil)
	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &standardRef).Return(2, nil).Once(),
		r.schedules.On("FindActiveBySourceForUpdate", ctx, standardRef).
			Return(nil, errs.NewObjectNotFoundError("schedule", standardRef.String())).Once(),
		r.schedules.On("Add", ctx, mock.AnythingOfType("*delivery.Schedule")).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.MatchedBy(func(m delivery.Mirror) bool {
			return m.Status == delivery.Scheduled && m.Date != nil && m.Date.IsEqual(date) && m.Notes == "call first"
		})).Return(nil).Once(),
		r.history.On("Append", ctx, mock.MatchedBy(func(e delivery.HistoryEntry) bool {
			return e.PreviousStatus == delivery.Pending && e.NewStatus == delivery.Scheduled && e.Actor == operator
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := schedulingFactory(r)
	handler := commands.NewScheduleDeliveryCommandHandler(factory)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.Schedule)
	assert.Equal(t, delivery.Scheduled, result.Schedule.Status())
	assert.Equal(t, "ORD-42", result.Schedule.PublicReference())
	assert.Equal(t, 3, result.Bookings)
	assert.Equal(t, calendar.DefaultMaxDeliveries, result.MaxDeliveries)
	r.assertExpectations(t)
	factory.AssertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_ReschedulesActiveSchedule(t *testing.T) {
	ctx := t.Context()
	oldDate := mustDate(t, "2025-03-07")
	date := mustDate(t, "2025-03-10")
	cmd := newScheduleCommand(t, date, nil)
	r := newRepos()

	existing, err := delivery.NewSchedule(kernel.NewUUID(), standardRef, "ORD-42",
		delivery.Booking{Date: oldDate, TimeSlot: "afternoon"}, time.Now())
	require.NoError(t, err)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &standardRef).Return(0, nil).Once(),
		r.schedules.On("FindActiveBySourceForUpdate", ctx, standardRef).Return(existing, nil).Once(),
		r.schedules.On("Update", ctx, existing).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.Anything).Return(nil).Once(),
		r.history.On("Append", ctx, mock.MatchedBy(func(e delivery.HistoryEntry) bool {
			return e.ScheduleID == existing.ID() && e.PreviousStatus == delivery.Scheduled
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, existing, result.Schedule)
	require.NotNil(t, existing.DeliveryDate())
	assert.True(t, existing.DeliveryDate().IsEqual(date))
	assert.Equal(t, "morning", existing.TimeSlot())
	r.schedules.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_CapacityExceeded(t *testing.T) {
	ctx := t.Context()
	date := mustDate(t, "2025-03-10")
	cmd := newScheduleCommand(t, date, nil)
	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &standardRef).Return(3, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err := handler.Handle(ctx, cmd)

	var full *errs.CapacityExceededError
	require.ErrorAs(t, err, &full)
	assert.Equal(t, 3, full.Current)
	assert.Equal(t, 3, full.Max)
	assert.Equal(t, "2025-03-10", full.Date)
	r.schedules.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.sources.AssertNotCalled(t, "UpdateMirror", mock.Anything, mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_UnavailableDay(t *testing.T) {
	ctx := t.Context()
	date := mustDate(t, "2025-12-25")
	cmd := newScheduleCommand(t, date, nil)
	r := newRepos()

	holiday, err := calendar.NewDay(date, calendar.Settings{MaxDeliveries: 5, IsAvailable: false, IsHoliday: true}, time.Now())
	require.NoError(t, err)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(holiday, nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &standardRef).Return(0, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrCapacityExceeded)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_NotEligible(t *testing.T) {
	ctx := t.Context()
	date := mustDate(t, "2025-03-10")
	cmd := newScheduleCommand(t, date, nil)
	r := newRepos()

	pending := source.StandardOrder{ID: "42", OrderNumber: "ORD-42", Status: "pending"}

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(pending, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotEligible)
	r.calendar.AssertNotCalled(t, "LockDay", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_SourceNotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newScheduleCommand(t, mustDate(t, "2025-03-10"), nil)
	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).
			Return(nil, errs.NewObjectNotFoundError("regular", "42")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_CourierNotFound(t *testing.T) {
	ctx := t.Context()
	courierID := kernel.NewUUID()
	cmd := newScheduleCommand(t, mustDate(t, "2025-03-10"), &courierID)
	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.couriers.On("Get", ctx, courierID).Return(nil, errs.NewObjectNotFoundError("courier", courierID)).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_WithCourier(t *testing.T) {
	ctx := t.Context()
	date := mustDate(t, "2025-03-10")
	courierID := kernel.NewUUID()
	cmd := newScheduleCommand(t, date, &courierID)
	r := newRepos()

	c, err := courier.NewCourier(courierID, "Rico", "09170000000", "motorcycle")
	require.NoError(t, err)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.couriers.On("Get", ctx, courierID).Return(c, nil).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &standardRef).Return(0, nil).Once(),
		r.schedules.On("FindActiveBySourceForUpdate", ctx, standardRef).
			Return(nil, errs.NewObjectNotFoundError("schedule", standardRef.String())).Once(),
		r.schedules.On("Add", ctx, mock.AnythingOfType("*delivery.Schedule")).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.Anything).Return(nil).Once(),
		r.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.Schedule.CourierID())
	assert.Equal(t, courierID, *result.Schedule.CourierID())
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_InTransitCannotBeRescheduled(t *testing.T) {
	ctx := t.Context()
	date := mustDate(t, "2025-03-10")
	cmd := newScheduleCommand(t, date, nil)
	r := newRepos()

	existing, err := delivery.NewSchedule(kernel.NewUUID(), standardRef, "ORD-42", delivery.Booking{Date: date}, time.Now())
	require.NoError(t, err)
	_, err = existing.ChangeStatus(delivery.InTransit, "", operator, time.Now())
	require.NoError(t, err)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &standardRef).Return(1, nil).Once(),
		r.schedules.On("FindActiveBySourceForUpdate", ctx, standardRef).Return(existing, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err = handler.Handle(ctx, cmd)

	var invalid *errs.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "in_transit", invalid.From)
	assert.Equal(t, "scheduled", invalid.To)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_MirrorErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	date := mustDate(t, "2025-03-10")
	cmd := newScheduleCommand(t, date, nil)
	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &standardRef).Return(0, nil).Once(),
		r.schedules.On("FindActiveBySourceForUpdate", ctx, standardRef).
			Return(nil, errs.NewObjectNotFoundError("schedule", standardRef.String())).Once(),
		r.schedules.On("Add", ctx, mock.AnythingOfType("*delivery.Schedule")).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.Anything).Return(errors.New("connection reset")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "connection reset")
	r.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	r.uow.AssertNotCalled(t, "Commit", mock.Anything)
	r.assertExpectations(t)
}

func TestScheduleDeliveryCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ScheduleDeliveryCommand{}

	factory := new(MockSchedulingUoWFactory)
	handler := commands.NewScheduleDeliveryCommandHandler(factory)
	_, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrScheduleDeliveryCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestScheduleDeliveryCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newScheduleCommand(t, mustDate(t, "2025-03-10"), nil)
	r := newRepos()

	r.uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	handler := commands.NewScheduleDeliveryCommandHandler(schedulingFactory(r))
	_, err := handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	r.uow.AssertNotCalled(t, "Rollback", mock.Anything)
}
