// Package ports defines the persistence and collaborator contracts of the
// delivery engine. Repositories returned by a UnitOfWork share its transaction.
package ports

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
)

// ScheduleRepository stores delivery schedules.
type ScheduleRepository interface {
	// Add persists a new schedule. Inserting a second active schedule for the
	// same source violates a unique index and fails.
	Add(ctx context.Context, aggregate *delivery.Schedule) error

	// Update persists changes to an existing schedule.
	Update(ctx context.Context, aggregate *delivery.Schedule) error

	// Get returns the schedule or an ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Schedule, error)

	// FindActiveBySourceForUpdate locks and returns the non-terminal schedule of
	// ref, or an ObjectNotFoundError when the source has none.
	FindActiveBySourceForUpdate(ctx context.Context, ref source.Ref) (*delivery.Schedule, error)

	// FindLatestBySourceForUpdate locks and returns the most recently created
	// schedule of ref regardless of status.
	FindLatestBySourceForUpdate(ctx context.Context, ref source.Ref) (*delivery.Schedule, error)

	// CountBookingsOnDate counts schedules on date that are not cancelled.
	// When exclude is set, the active schedule of that source is left out so a
	// reschedule on the same date does not count against itself.
	//
	// Example:
	//   n, err := repo.CountBookingsOnDate(ctx, date, &ref)
	//   if err != nil {
	//       return err
	//   }
	//   if err := day.CheckCapacity(n); err != nil {
	//       return err // CapacityExceededError
	//   }
	CountBookingsOnDate(ctx context.Context, date kernel.Date, exclude *source.Ref) (int, error)
}
