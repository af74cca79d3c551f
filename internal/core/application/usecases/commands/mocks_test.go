package commands_test

import (
	"context"

	"deliveryscheduler/internal/core/application/usecases/commands"
	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/courier"
	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockScheduleRepository struct{ mock.Mock }

func (m *MockScheduleRepository) Add(ctx context.Context, s *delivery.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, s *delivery.Schedule) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockScheduleRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindActiveBySourceForUpdate(ctx context.Context, ref source.Ref) (*delivery.Schedule, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) FindLatestBySourceForUpdate(ctx context.Context, ref source.Ref) (*delivery.Schedule, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) CountBookingsOnDate(ctx context.Context, date kernel.Date, exclude *source.Ref) (int, error) {
	args := m.Called(ctx, date, exclude)
	return args.Int(0), args.Error(1)
}

type MockCalendarRepository struct{ mock.Mock }

func (m *MockCalendarRepository) LockDay(ctx context.Context, date kernel.Date) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

func (m *MockCalendarRepository) Get(ctx context.Context, date kernel.Date) (*calendar.Day, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*calendar.Day), args.Error(1)
}

func (m *MockCalendarRepository) Save(ctx context.Context, day *calendar.Day) error {
	args := m.Called(ctx, day)
	return args.Error(0)
}

type MockSourceRepository struct{ mock.Mock }

func (m *MockSourceRepository) GetForUpdate(ctx context.Context, ref source.Ref) (source.Record, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(source.Record), args.Error(1)
}

func (m *MockSourceRepository) List(ctx context.Context, kind source.Kind) ([]source.Record, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]source.Record), args.Error(1)
}

func (m *MockSourceRepository) FindByPublicReference(ctx context.Context, kind source.Kind, publicReference string) (source.Ref, error) {
	args := m.Called(ctx, kind, publicReference)
	return args.Get(0).(source.Ref), args.Error(1)
}

func (m *MockSourceRepository) UpdateMirror(ctx context.Context, ref source.Ref, mirror delivery.Mirror) error {
	args := m.Called(ctx, ref, mirror)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry delivery.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListBySchedule(ctx context.Context, scheduleID kernel.UUID) ([]delivery.HistoryEntry, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]delivery.HistoryEntry), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockLedger struct{ mock.Mock }

func (m *MockLedger) MarkCompleted(ctx context.Context, ref source.Ref) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockLedger) MarkCancelled(ctx context.Context, ref source.Ref) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the package; each test
// only sets expectations for the repositories its handler asks for.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ScheduleRepository() ports.ScheduleRepository {
	args := m.Called()
	return args.Get(0).(ports.ScheduleRepository)
}

func (m *MockUoW) CalendarRepository() ports.CalendarRepository {
	args := m.Called()
	return args.Get(0).(ports.CalendarRepository)
}

func (m *MockUoW) SourceRepository() ports.SourceRepository {
	args := m.Called()
	return args.Get(0).(ports.SourceRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

type MockSchedulingUoWFactory struct{ mock.Mock }

func (m *MockSchedulingUoWFactory) Create() commands.SchedulingUoW {
	args := m.Called()
	return args.Get(0).(commands.SchedulingUoW)
}

type MockStatusUoWFactory struct{ mock.Mock }

func (m *MockStatusUoWFactory) Create() commands.StatusUoW {
	args := m.Called()
	return args.Get(0).(commands.StatusUoW)
}

type MockCalendarUoWFactory struct{ mock.Mock }

func (m *MockCalendarUoWFactory) Create() commands.CalendarUoW {
	args := m.Called()
	return args.Get(0).(commands.CalendarUoW)
}

// repos bundles the mocked repositories behind one MockUoW.
type repos struct {
	uow       *MockUoW
	schedules *MockScheduleRepository
	calendar  *MockCalendarRepository
	sources   *MockSourceRepository
	history   *MockHistoryRepository
	couriers  *MockCourierRepository
}

func newRepos() repos {
	r := repos{
		uow:       new(MockUoW),
		schedules: new(MockScheduleRepository),
		calendar:  new(MockCalendarRepository),
		sources:   new(MockSourceRepository),
		history:   new(MockHistoryRepository),
		couriers:  new(MockCourierRepository),
	}
	r.uow.On("ScheduleRepository").Return(r.schedules).Maybe()
	r.uow.On("CalendarRepository").Return(r.calendar).Maybe()
	r.uow.On("SourceRepository").Return(r.sources).Maybe()
	r.uow.On("HistoryRepository").Return(r.history).Maybe()
	r.uow.On("CourierRepository").Return(r.couriers).Maybe()
	return r
}

func (r repos) assertExpectations(t mock.TestingT) {
	r.uow.AssertExpectations(t)
	r.schedules.AssertExpectations(t)
	r.calendar.AssertExpectations(t)
	r.sources.AssertExpectations(t)
	r.history.AssertExpectations(t)
	r.couriers.AssertExpectations(t)
}
