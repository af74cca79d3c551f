// Package commands contains the operations that change delivery state.
// Every handler follows the same flow: validate the command, open a unit of
// work, lock what it is about to change, apply domain rules, commit.
package commands

import (
	"context"

	"deliveryscheduler/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches. All
// repositories returned by one unit of work share its transaction.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ScheduleRepoFactory interface {
		ScheduleRepository() ports.ScheduleRepository
	}

	CalendarRepoFactory interface {
		CalendarRepository() ports.CalendarRepository
	}

	SourceRepoFactory interface {
		SourceRepository() ports.SourceRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// SchedulingUoW spans everything a booking touches: the source row, the
	// calendar day, the schedule, its history and courier lookups.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   record, err := uow.SourceRepository().GetForUpdate(ctx, ref)
	//   // ... lock the day, count bookings, upsert the schedule
	//
	//   return uow.Commit(ctx)
	SchedulingUoW interface {
		TxManager
		ScheduleRepoFactory
		CalendarRepoFactory
		SourceRepoFactory
		HistoryRepoFactory
		CourierRepoFactory
	}

	SchedulingUoWFactory interface {
		Create() SchedulingUoW
	}

	// StatusUoW is used by status transitions. The calendar is only consulted
	// when a transition creates a schedule on a date mirrored from the source.
	StatusUoW interface {
		TxManager
		ScheduleRepoFactory
		CalendarRepoFactory
		SourceRepoFactory
		HistoryRepoFactory
	}

	StatusUoWFactory interface {
		Create() StatusUoW
	}

	// CalendarUoW is used by calendar edits only.
	CalendarUoW interface {
		TxManager
		CalendarRepoFactory
	}

	CalendarUoWFactory interface {
		Create() CalendarUoW
	}
)
