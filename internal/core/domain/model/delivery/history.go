package delivery

import (
	"time"

	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
)

// HistoryEntry is an immutable audit record of one status change. Entries are
// only ever appended.
type HistoryEntry struct {
	ScheduleID     kernel.UUID
	Source         source.Ref
	PreviousStatus Status
	NewStatus      Status
	Notes          string
	Actor          Actor
	Forced         bool
	Warning        string
	CreatedAt      time.Time
}

// NewHistoryEntry records tr as applied to s by actor.
func NewHistoryEntry(s *Schedule, tr Transition, notes string, actor Actor, at time.Time) HistoryEntry {
	return HistoryEntry{
		ScheduleID:     s.ID(),
		Source:         s.Source(),
		PreviousStatus: tr.From,
		NewStatus:      tr.To,
		Notes:          notes,
		Actor:          actor,
		Forced:         tr.Forced,
		Warning:        tr.Warning,
		CreatedAt:      at,
	}
}
