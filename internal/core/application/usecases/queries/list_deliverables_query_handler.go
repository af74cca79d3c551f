package queries

import (
	"context"

	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/core/domain/services"

	"gorm.io/gorm"
)

// SourceReader is the part of ports.SourceRepository the listing needs.
type SourceReader interface {
	List(ctx context.Context, kind source.Kind) ([]source.Record, error)
}

// ListDeliverablesQueryHandler normalizes the source tables and attaches the
// latest schedule of each eligible row. Ineligible rows are dropped by the
// normalizer and never reach the response.
type ListDeliverablesQueryHandler struct {
	db         *gorm.DB
	sources    SourceReader
	normalizer services.Normalizer
}

func NewListDeliverablesQueryHandler(db *gorm.DB, sources SourceReader) ListDeliverablesQueryHandler {
	return ListDeliverablesQueryHandler{
		db:         db,
		sources:    sources,
		normalizer: services.NewNormalizer(),
	}
}

func (h ListDeliverablesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliverablesQuery,
) (ListDeliverablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDeliverablesQueryResponse{}, err
	}

	latest, err := h.latestSchedules(ctx)
	if err != nil {
		return ListDeliverablesQueryResponse{}, err
	}

	response := ListDeliverablesQueryResponse{
		Items:   make([]DeliverableView, 0),
		Summary: DeliverablesSummary{ByKind: make(map[source.Kind]int)},
	}

	for _, kind := range query.Kinds() {
		records, listErr := h.sources.List(ctx, kind)
		if listErr != nil {
			return ListDeliverablesQueryResponse{}, listErr
		}

		for _, d := range h.normalizer.NormalizeAll(records) {
			item := DeliverableView{Deliverable: d}
			if s, ok := latest[d.Source]; ok {
				item.Schedule = &s
			}
			response.Items = append(response.Items, item)

			response.Summary.ByKind[kind]++
			if item.Schedule != nil && item.Schedule.Status != delivery.Cancelled {
				response.Summary.Scheduled++
			} else {
				response.Summary.Pending++
			}
		}
	}
	response.Summary.Total = len(response.Items)

	return response, nil
}

func (h ListDeliverablesQueryHandler) latestSchedules(ctx context.Context) (map[source.Ref]ScheduleView, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT ON (s.source_kind, s.source_id)` + scheduleColumns + `
		FROM delivery_schedules s
		LEFT JOIN couriers c ON c.id = s.courier_id
		ORDER BY s.source_kind, s.source_id, s.created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := make(map[source.Ref]ScheduleView)
	for rows.Next() {
		view, scanErr := scanSchedule(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		latest[view.Source] = view
	}

	return latest, rows.Err()
}
