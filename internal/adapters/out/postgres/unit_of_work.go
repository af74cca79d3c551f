// Package postgres provides the GORM implementation of the Unit of Work and
// the schema migrations of the delivery engine.
//
// Every repository handed out by a GormUnitOfWork is bound to its transaction
// once Begin has been called, so a command that schedules a delivery locks the
// source row, the calendar day and the schedule in one transaction:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.CalendarRepository().LockDay(ctx, date); err != nil {
//	    return err
//	}
//	n, err := uow.ScheduleRepository().CountBookingsOnDate(ctx, date, &ref)
//	...
//	return uow.Commit(ctx)
//
// Each UnitOfWork holds at most one transaction; concurrent operations must use
// separate instances.
package postgres

import (
	"context"

	"deliveryscheduler/internal/adapters/out/postgres/calendarrepo"
	"deliveryscheduler/internal/adapters/out/postgres/courierrepo"
	"deliveryscheduler/internal/adapters/out/postgres/historyrepo"
	"deliveryscheduler/internal/adapters/out/postgres/schedulerepo"
	"deliveryscheduler/internal/adapters/out/postgres/sourcerepo"
	"deliveryscheduler/internal/core/ports"

	"gorm.io/gorm"
)

// CourierDecorator wraps the transaction-bound courier repository, e.g. with a cache.
type CourierDecorator func(ports.CourierRepository) ports.CourierRepository

// Option configures a GormUnitOfWorkFactory.
type Option func(*GormUnitOfWorkFactory)

// WithCourierDecorator routes courier lookups through decorate.
func WithCourierDecorator(decorate CourierDecorator) Option {
	return func(f *GormUnitOfWorkFactory) {
		f.decorateCourier = decorate
	}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db              *gorm.DB
	decorateCourier CourierDecorator
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...Option) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{db: db}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:              f.db,
		decorateCourier: f.decorateCourier,
	}
}

// GormUnitOfWork coordinates one database transaction.
type GormUnitOfWork struct {
	db              *gorm.DB
	tx              *gorm.DB
	decorateCourier CourierDecorator
}

// Begin starts a transaction. A second call while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit returns gorm.ErrInvalidTransaction when no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback returns gorm.ErrInvalidTransaction when no transaction is active,
// which makes a deferred Rollback after a successful Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) ScheduleRepository() ports.ScheduleRepository {
	return schedulerepo.NewGormScheduleRepository(uow.conn())
}

func (uow *GormUnitOfWork) CalendarRepository() ports.CalendarRepository {
	return calendarrepo.NewGormCalendarRepository(uow.conn())
}

func (uow *GormUnitOfWork) SourceRepository() ports.SourceRepository {
	return sourcerepo.NewGormSourceRepository(uow.conn())
}

func (uow *GormUnitOfWork) HistoryRepository() ports.HistoryRepository {
	return historyrepo.NewGormHistoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	var repo ports.CourierRepository = courierrepo.NewGormCourierRepository(uow.conn())
	if uow.decorateCourier != nil {
		repo = uow.decorateCourier(repo)
	}
	return repo
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
