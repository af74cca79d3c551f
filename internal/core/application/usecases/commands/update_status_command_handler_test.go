package commands_test

import (
	"errors"
	"testing"
	"time"

	"deliveryscheduler/internal/core/application/usecases/commands"
	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func statusFactory(r repos) *MockStatusUoWFactory {
	factory := new(MockStatusUoWFactory)
	factory.On("Create").Return(r.uow).Once()
	return factory
}

func scheduleIn(t *testing.T, status delivery.Status) *delivery.Schedule {
	t.Helper()
	date := mustDate(t, "2025-03-10")
	s, err := delivery.RestoreSchedule(delivery.Snapshot{
		ID:              kernel.NewUUID(),
		Source:          standardRef,
		PublicReference: "ORD-42",
		DeliveryDate:    &date,
		Status:          status,
		Priority:        delivery.PriorityNormal,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	})
	require.NoError(t, err)
	return s
}

func TestUpdateStatusCommandHandler_Handle_InTransitToDelivered(t *testing.T) {
	ctx := t.Context()
	s := scheduleIn(t, delivery.InTransit)
	cmd, err := commands.NewUpdateStatusByIDCommand(s.ID(), delivery.Delivered, "received by guard", operator)
	require.NoError(t, err)

	r := newRepos()
	ledger := new(MockLedger)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.schedules.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.schedules.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		r.schedules.On("Update", ctx, s).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.MatchedBy(func(m delivery.Mirror) bool {
			return m.Status == delivery.Delivered && m.Notes == "received by guard"
		})).Return(nil).Once(),
		r.history.On("Append", ctx, mock.MatchedBy(func(e delivery.HistoryEntry) bool {
			return e.PreviousStatus == delivery.InTransit &&
				e.NewStatus == delivery.Delivered &&
				e.ScheduleID == s.ID() &&
				!e.Forced
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		ledger.On("MarkCompleted", ctx, standardRef).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), ledger, zerolog.Nop())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Delivered, result.Schedule.Status())
	assert.NotNil(t, result.Schedule.DeliveredAt())
	assert.Equal(t, delivery.InTransit, result.Transition.From)
	r.history.AssertNumberOfCalls(t, "Append", 1)
	r.assertExpectations(t)
	ledger.AssertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_TerminalIsRejectedForOperators(t *testing.T) {
	ctx := t.Context()
	s := scheduleIn(t, delivery.Delivered)
	cmd, err := commands.NewUpdateStatusByIDCommand(s.ID(), delivery.Scheduled, "", operator)
	require.NoError(t, err)

	r := newRepos()
	ledger := new(MockLedger)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.schedules.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.schedules.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), ledger, zerolog.Nop())
	_, err = handler.Handle(ctx, cmd)

	var invalid *errs.InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "delivered", invalid.From)
	assert.Equal(t, "scheduled", invalid.To)
	assert.Equal(t, delivery.Delivered, s.Status())
	r.schedules.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	r.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	ledger.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_StaffMayForce(t *testing.T) {
	ctx := t.Context()
	s := scheduleIn(t, delivery.Cancelled)
	cmd, err := commands.NewUpdateStatusByIDCommand(s.ID(), delivery.Scheduled, "customer called back", staff)
	require.NoError(t, err)

	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.schedules.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.schedules.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		r.schedules.On("Update", ctx, s).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.Anything).Return(nil).Once(),
		r.history.On("Append", ctx, mock.MatchedBy(func(e delivery.HistoryEntry) bool {
			return e.Forced && e.Warning != "" && e.Actor == staff
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), new(MockLedger), zerolog.Nop())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Transition.Forced)
	assert.Equal(t, delivery.Scheduled, result.Schedule.Status())
	r.assertExpectations(t)
}

func mirroredFabricationOrder(t *testing.T) (source.Ref, source.CustomFabricationOrder, kernel.Date) {
	t.Helper()
	mirrored := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	verifiedAt := time.Now()
	record := source.CustomFabricationOrder{
		ID:                "7",
		CustomOrderID:     "CUST-2025-007",
		Status:            "approved",
		PaymentStatus:     "verified",
		PaymentVerifiedAt: &verifiedAt,
		DeliveryDate:      &mirrored,
	}
	return source.Ref{Kind: source.CustomFabrication, ID: "7"}, record, mustDate(t, "2025-03-12")
}

func TestUpdateStatusCommandHandler_Handle_CreatesScheduleForUnscheduledSource(t *testing.T) {
	ctx := t.Context()
	ref, record, date := mirroredFabricationOrder(t)

	cmd, err := commands.NewUpdateStatusBySourceCommand(ref, delivery.Scheduled, "", operator)
	require.NoError(t, err)

	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, ref).Return(record, nil).Once(),
		r.schedules.On("FindLatestBySourceForUpdate", ctx, ref).
			Return(nil, errs.NewObjectNotFoundError("schedule", ref.String())).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &ref).Return(2, nil).Once(),
		r.schedules.On("Add", ctx, mock.AnythingOfType("*delivery.Schedule")).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, ref, mock.MatchedBy(func(m delivery.Mirror) bool {
			return m.Status == delivery.Scheduled && m.Date != nil && m.Date.String() == "2025-03-12"
		})).Return(nil).Once(),
		r.history.On("Append", ctx, mock.MatchedBy(func(e delivery.HistoryEntry) bool {
			return e.PreviousStatus == delivery.Pending && e.NewStatus == delivery.Scheduled
		})).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), new(MockLedger), zerolog.Nop())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "CUST-2025-007", result.Schedule.PublicReference())
	r.schedules.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_UnscheduledSourceOnFullDay(t *testing.T) {
	ctx := t.Context()
	ref, record, date := mirroredFabricationOrder(t)

	cmd, err := commands.NewUpdateStatusBySourceCommand(ref, delivery.Scheduled, "", operator)
	require.NoError(t, err)

	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, ref).Return(record, nil).Once(),
		r.schedules.On("FindLatestBySourceForUpdate", ctx, ref).
			Return(nil, errs.NewObjectNotFoundError("schedule", ref.String())).Once(),
		r.calendar.On("LockDay", ctx, date).Return(nil).Once(),
		r.calendar.On("Get", ctx, date).Return(calendar.DefaultDay(date), nil).Once(),
		r.schedules.On("CountBookingsOnDate", ctx, date, &ref).Return(3, nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), new(MockLedger), zerolog.Nop())
	_, err = handler.Handle(ctx, cmd)

	var full *errs.CapacityExceededError
	require.ErrorAs(t, err, &full)
	assert.Equal(t, "2025-03-12", full.Date)
	assert.Equal(t, 3, full.Current)
	assert.Equal(t, calendar.DefaultMaxDeliveries, full.Max)
	r.schedules.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	r.sources.AssertNotCalled(t, "UpdateMirror", mock.Anything, mock.Anything, mock.Anything)
	r.history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_UnscheduledStandardOrderSkipsCalendar(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateStatusBySourceCommand(standardRef, delivery.Scheduled, "", operator)
	require.NoError(t, err)

	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.schedules.On("FindLatestBySourceForUpdate", ctx, standardRef).
			Return(nil, errs.NewObjectNotFoundError("schedule", standardRef.String())).Once(),
		r.schedules.On("Add", ctx, mock.MatchedBy(func(s *delivery.Schedule) bool {
			return s.DeliveryDate() == nil
		})).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.Anything).Return(nil).Once(),
		r.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), new(MockLedger), zerolog.Nop())
	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	r.calendar.AssertNotCalled(t, "LockDay", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_UnscheduledSourceCannotBeCancelled(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateStatusBySourceCommand(standardRef, delivery.Cancelled, "", operator)
	require.NoError(t, err)

	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.schedules.On("FindLatestBySourceForUpdate", ctx, standardRef).
			Return(nil, errs.NewObjectNotFoundError("schedule", standardRef.String())).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), new(MockLedger), zerolog.Nop())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_UnscheduledSourceMustBeEligible(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateStatusBySourceCommand(standardRef, delivery.Scheduled, "", operator)
	require.NoError(t, err)

	r := newRepos()
	pending := source.StandardOrder{ID: "42", Status: "pending"}

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(pending, nil).Once(),
		r.schedules.On("FindLatestBySourceForUpdate", ctx, standardRef).
			Return(nil, errs.NewObjectNotFoundError("schedule", standardRef.String())).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), new(MockLedger), zerolog.Nop())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotEligible)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_LedgerFailureIsNotFatal(t *testing.T) {
	ctx := t.Context()
	s := scheduleIn(t, delivery.Scheduled)
	cmd, err := commands.NewUpdateStatusBySourceCommand(standardRef, delivery.Cancelled, "customer request", operator)
	require.NoError(t, err)

	r := newRepos()
	ledger := new(MockLedger)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.schedules.On("FindLatestBySourceForUpdate", ctx, standardRef).Return(s, nil).Once(),
		r.schedules.On("Update", ctx, s).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.Anything).Return(nil).Once(),
		r.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(nil).Once(),
		ledger.On("MarkCancelled", ctx, standardRef).Return(errors.New("broker unavailable")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), ledger, zerolog.Nop())
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Cancelled, result.Schedule.Status())
	ledger.AssertExpectations(t)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_CommitErrorSkipsLedger(t *testing.T) {
	ctx := t.Context()
	s := scheduleIn(t, delivery.InTransit)
	cmd, err := commands.NewUpdateStatusByIDCommand(s.ID(), delivery.Delivered, "", operator)
	require.NoError(t, err)

	r := newRepos()
	ledger := new(MockLedger)

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.schedules.On("Get", ctx, s.ID()).Return(s, nil).Once(),
		r.sources.On("GetForUpdate", ctx, standardRef).Return(eligibleRecord, nil).Once(),
		r.schedules.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		r.schedules.On("Update", ctx, s).Return(nil).Once(),
		r.sources.On("UpdateMirror", ctx, standardRef, mock.Anything).Return(nil).Once(),
		r.history.On("Append", ctx, mock.Anything).Return(nil).Once(),
		r.uow.On("Commit", ctx).Return(errors.New("commit failed")).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), ledger, zerolog.Nop())
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "commit failed")
	ledger.AssertNotCalled(t, "MarkCompleted", mock.Anything, mock.Anything)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_ScheduleNotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateStatusByIDCommand(id, delivery.Delivered, "", operator)
	require.NoError(t, err)

	r := newRepos()

	mock.InOrder(
		r.uow.On("Begin", ctx).Return(nil).Once(),
		r.schedules.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("schedule", id)).Once(),
		r.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewUpdateStatusCommandHandler(statusFactory(r), new(MockLedger), zerolog.Nop())
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	r.assertExpectations(t)
}

func TestUpdateStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockStatusUoWFactory)
	handler := commands.NewUpdateStatusCommandHandler(factory, new(MockLedger), zerolog.Nop())

	_, err := handler.Handle(t.Context(), commands.UpdateStatusCommand{})

	require.ErrorIs(t, err, commands.ErrUpdateStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
