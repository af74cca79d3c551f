package commands

import (
	"context"
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/ports"
)

// propagate is the only code that writes delivery fields onto a source row.
// It must run in the same transaction as the schedule write it mirrors, and
// it appends the history entry for tr in that transaction too.
func propagate(
	ctx context.Context,
	sources ports.SourceRepository,
	history ports.HistoryRepository,
	schedule *delivery.Schedule,
	tr delivery.Transition,
	notes string,
	actor delivery.Actor,
	now time.Time,
) error {
	if err := sources.UpdateMirror(ctx, schedule.Source(), schedule.Mirror()); err != nil {
		return err
	}

	return history.Append(ctx, delivery.NewHistoryEntry(schedule, tr, notes, actor, now))
}
