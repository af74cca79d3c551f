package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Client code manages the
// transaction explicitly.
type UnitOfWork interface {
	// Begin starts a transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active.
	Rollback(ctx context.Context) error

	ScheduleRepository() ScheduleRepository
	CalendarRepository() CalendarRepository
	SourceRepository() SourceRepository
	HistoryRepository() HistoryRepository
	CourierRepository() CourierRepository
}
