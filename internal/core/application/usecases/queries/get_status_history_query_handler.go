package queries

import (
	"context"
	"time"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler returns history entries newest first.
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for an unknown schedule and an empty
// slice for a schedule without entries.
func (h GetStatusHistoryQueryHandler) Handle(ctx context.Context, query GetStatusHistoryQuery) ([]delivery.HistoryEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	id := query.ScheduleID()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM delivery_schedules WHERE id = ?)`, id.Bytes()).
		Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("schedule", id)
	}

	rows, err := db.Raw(`
		SELECT
			source_kind,
			source_id,
			previous_status,
			new_status,
			notes,
			actor_id,
			actor_name,
			actor_role,
			forced,
			warning,
			created_at
		FROM status_history
		WHERE schedule_id = ?
		ORDER BY created_at DESC, id DESC
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]delivery.HistoryEntry, 0)
	for rows.Next() {
		var (
			kind, previous, next string
			entry                delivery.HistoryEntry
			createdAt            time.Time
		)
		if err = rows.Scan(
			&kind,
			&entry.Source.ID,
			&previous,
			&next,
			&entry.Notes,
			&entry.Actor.ID,
			&entry.Actor.Name,
			&entry.Actor.Role,
			&entry.Forced,
			&entry.Warning,
			&createdAt,
		); err != nil {
			return nil, err
		}

		entry.ScheduleID = id
		entry.Source.Kind = source.Kind(kind)
		entry.CreatedAt = createdAt
		if entry.PreviousStatus, err = delivery.ParseStatus(previous); err != nil {
			return nil, err
		}
		if entry.NewStatus, err = delivery.ParseStatus(next); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
