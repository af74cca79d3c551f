package queries

import (
	"context"
	"fmt"
	"iter"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// sourceTables maps each kind to the table holding its delivery mirror.
func sourceTables() map[source.Kind]string {
	return map[source.Kind]string{
		source.Standard:          "orders",
		source.CustomFabrication: "custom_orders",
		source.CustomDesign:      "custom_designs",
	}
}

// RunConsistencyAuditQueryHandler is read-only. It reports drift between
// delivery_schedules and the mirror columns of the source tables; it never
// repairs anything.
//
// Example:
//
//	for m, err := range handler.Audit(ctx, query) {
//	    if err != nil {
//	        return err
//	    }
//	    logger.Warn().Err(m.Violation()).Str("repair", m.SuggestedRepair).Msg("mismatch")
//	}
type RunConsistencyAuditQueryHandler struct {
	db *gorm.DB
}

func NewRunConsistencyAuditQueryHandler(db *gorm.DB) RunConsistencyAuditQueryHandler {
	return RunConsistencyAuditQueryHandler{db: db}
}

// Handle collects the whole audit.
func (h RunConsistencyAuditQueryHandler) Handle(ctx context.Context, query RunConsistencyAuditQuery) ([]Mismatch, error) {
	mismatches := make([]Mismatch, 0)
	for m, err := range h.Audit(ctx, query) {
		if err != nil {
			return nil, err
		}
		mismatches = append(mismatches, m)
	}
	return mismatches, nil
}

// Audit streams mismatches from a database cursor, one kind at a time. The
// sequence is finite and each range over it runs the queries again. A failure
// is yielded once as the error and ends the sequence.
func (h RunConsistencyAuditQueryHandler) Audit(ctx context.Context, query RunConsistencyAuditQuery) iter.Seq2[Mismatch, error] {
	return func(yield func(Mismatch, error) bool) {
		if err := query.Validate(); err != nil {
			yield(Mismatch{}, err)
			return
		}

		tables := sourceTables()
		for _, kind := range query.Kinds() {
			if !h.auditKind(ctx, kind, tables[kind], yield) {
				return
			}
		}
	}
}

// auditKind reports false when iteration must stop.
func (h RunConsistencyAuditQueryHandler) auditKind(
	ctx context.Context,
	kind source.Kind,
	table string,
	yield func(Mismatch, error) bool,
) bool {
	rows, err := h.db.WithContext(ctx).Raw(fmt.Sprintf(`
		SELECT DISTINCT ON (s.source_id)
			s.id,
			s.source_id,
			s.public_reference,
			s.status,
			src.id IS NOT NULL,
			COALESCE(src.delivery_status, '')
		FROM delivery_schedules s
		LEFT JOIN %s src ON CAST(src.id AS text) = s.source_id
		WHERE s.source_kind = ?
		ORDER BY s.source_id, s.created_at DESC
	`, pq.QuoteIdentifier(table)), kind.String()).Rows()
	if err != nil {
		yield(Mismatch{}, err)
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var (
			m          Mismatch
			id         uuid.UUID
			status     string
			found      bool
			mirrorText string
		)
		if err = rows.Scan(&id, &m.Source.ID, &m.PublicReference, &status, &found, &mirrorText); err != nil {
			yield(Mismatch{}, err)
			return false
		}

		if m.ScheduleID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			yield(Mismatch{}, err)
			return false
		}
		if m.ScheduleStatus, err = delivery.ParseStatus(status); err != nil {
			yield(Mismatch{}, err)
			return false
		}

		m.Source.Kind = kind
		m.MirrorStatus = mirrorText
		m.SourceMissing = !found
		m.CanonicalMirror, _ = delivery.ParseLegacyStatus(mirrorText)

		if found && m.CanonicalMirror == m.ScheduleStatus {
			continue
		}

		m.SuggestedRepair = suggestRepair(m, table)
		if !yield(m, nil) {
			return false
		}
	}

	if err = rows.Err(); err != nil {
		yield(Mismatch{}, err)
		return false
	}
	return true
}
