package ports

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
)

// HistoryRepository is append-only.
type HistoryRepository interface {
	Append(ctx context.Context, entry delivery.HistoryEntry) error

	// ListBySchedule returns the entries of a schedule, newest first.
	ListBySchedule(ctx context.Context, scheduleID kernel.UUID) ([]delivery.HistoryEntry, error)
}
