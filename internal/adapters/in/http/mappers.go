package http

import (
	"deliveryscheduler/internal/core/application/usecases/queries"
	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toSchedule(s *delivery.Schedule) servers.Schedule {
	ref := s.Source()
	response := servers.Schedule{
		Id:              s.ID().Bytes(),
		SourceKind:      servers.SourceKind(ref.Kind),
		SourceId:        ref.ID,
		PublicReference: s.PublicReference(),
		DeliveryDate:    toDate(s.DeliveryDate()),
		TimeSlot:        optional(s.TimeSlot()),
		Status:          s.Status().String(),
		Priority:        s.Priority().String(),
		Notes:           optional(s.Notes()),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
		DispatchedAt:    s.DispatchedAt(),
		DeliveredAt:     s.DeliveredAt(),
	}
	if id := s.CourierID(); id != nil {
		courierID := id.Bytes()
		response.CourierId = &courierID
	}
	return response
}

func toScheduleView(v queries.ScheduleView) servers.Schedule {
	response := servers.Schedule{
		Id:              v.ID.Bytes(),
		SourceKind:      servers.SourceKind(v.Source.Kind),
		SourceId:        v.Source.ID,
		PublicReference: v.PublicReference,
		DeliveryDate:    toDate(v.DeliveryDate),
		TimeSlot:        optional(v.TimeSlot),
		Status:          v.Status.String(),
		Priority:        v.Priority.String(),
		Notes:           optional(v.Notes),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
	if v.Courier != nil {
		courierID := v.Courier.ID.Bytes()
		response.CourierId = &courierID
	}
	return response
}

func toCalendarMonth(month queries.GetCalendarQueryResponse) servers.CalendarMonth {
	response := servers.CalendarMonth{
		Year:        month.Year,
		Month:       int(month.Month),
		Days:        make([]servers.CalendarDay, len(month.Days)),
		Unscheduled: make([]servers.CalendarDelivery, len(month.Unscheduled)),
	}
	response.Summary.TotalDays = month.Summary.TotalDays
	response.Summary.TotalDeliveries = month.Summary.TotalDeliveries
	response.Summary.AvailableDays = month.Summary.AvailableDays
	response.Summary.Unscheduled = month.Summary.Unscheduled

	for i, s := range month.Unscheduled {
		response.Unscheduled[i] = toCalendarDelivery(s)
	}

	for i, d := range month.Days {
		day := servers.CalendarDay{
			Date:            openapi_types.Date{Time: d.Date.Time()},
			MaxDeliveries:   d.Settings.MaxDeliveries,
			IsAvailable:     d.Settings.IsAvailable,
			IsHoliday:       d.Settings.IsHoliday,
			SpecialNotes:    optional(d.Settings.SpecialNotes),
			IsExplicit:      d.IsExplicit,
			IsWeekend:       d.IsWeekend,
			CurrentBookings: d.CurrentBookings,
			EffectiveMax:    d.EffectiveMax,
			HasCapacity:     d.HasCapacity,
			Deliveries:      make([]servers.CalendarDelivery, len(d.Deliveries)),
		}
		for k, s := range d.Deliveries {
			day.Deliveries[k] = toCalendarDelivery(s)
		}
		response.Days[i] = day
	}
	return response
}

func toCalendarDelivery(v queries.ScheduleView) servers.CalendarDelivery {
	response := servers.CalendarDelivery{
		Id:              v.ID.Bytes(),
		SourceKind:      servers.SourceKind(v.Source.Kind),
		SourceId:        v.Source.ID,
		PublicReference: v.PublicReference,
		TimeSlot:        optional(v.TimeSlot),
		Status:          v.Status.String(),
		Priority:        v.Priority.String(),
		Notes:           optional(v.Notes),
	}
	if c := v.Courier; c != nil {
		response.Courier = &servers.Courier{
			Id:          c.ID.Bytes(),
			Name:        c.Name,
			PhoneNumber: optional(c.PhoneNumber),
			VehicleType: optional(c.VehicleType),
		}
	}
	return response
}

func toDeliverableList(list queries.ListDeliverablesQueryResponse) servers.DeliverableList {
	response := servers.DeliverableList{Items: make([]servers.Deliverable, len(list.Items))}
	response.Summary.Total = list.Summary.Total
	response.Summary.Scheduled = list.Summary.Scheduled
	response.Summary.Pending = list.Summary.Pending
	response.Summary.ByKind = make(map[string]int, len(list.Summary.ByKind))
	for kind, n := range list.Summary.ByKind {
		response.Summary.ByKind[kind.String()] = n
	}

	for i, item := range list.Items {
		d := item.Deliverable
		response.Items[i] = servers.Deliverable{
			SourceKind:      servers.SourceKind(d.Source.Kind),
			SourceId:        d.Source.ID,
			PublicReference: d.PublicReference,
			CustomerName:    d.Customer.Name,
			CustomerEmail:   optional(d.Customer.Email),
			CustomerPhone:   optional(d.Customer.Phone),
			Address:         d.Address.Line,
			Amount:          float32(d.Amount),
			PaymentVerified: d.PaymentVerified,
			DeliveryStatus:  d.DeliveryStatus.String(),
		}
		if item.Schedule != nil {
			schedule := toScheduleView(*item.Schedule)
			response.Items[i].Schedule = &schedule
		}
	}
	return response
}

func toHistoryEntry(e delivery.HistoryEntry) servers.HistoryEntry {
	return servers.HistoryEntry{
		PreviousStatus: e.PreviousStatus.String(),
		NewStatus:      e.NewStatus.String(),
		Notes:          optional(e.Notes),
		ActorId:        e.Actor.ID,
		ActorName:      optional(e.Actor.Name),
		ActorRole:      optional(e.Actor.Role),
		Forced:         e.Forced,
		Warning:        optional(e.Warning),
		CreatedAt:      e.CreatedAt,
	}
}

func toMismatch(m queries.Mismatch) servers.Mismatch {
	return servers.Mismatch{
		ScheduleId:      m.ScheduleID.Bytes(),
		SourceKind:      servers.SourceKind(m.Source.Kind),
		SourceId:        m.Source.ID,
		PublicReference: m.PublicReference,
		ScheduleStatus:  m.ScheduleStatus.String(),
		MirrorStatus:    m.MirrorStatus,
		SourceMissing:   m.SourceMissing,
		SuggestedRepair: m.SuggestedRepair,
	}
}

func toKinds(kinds *servers.Kinds) []source.Kind {
	if kinds == nil {
		return nil
	}
	result := make([]source.Kind, len(*kinds))
	for i, k := range *kinds {
		result[i] = source.Kind(k)
	}
	return result
}

func toDate(d *kernel.Date) *openapi_types.Date {
	if d == nil {
		return nil
	}
	return &openapi_types.Date{Time: d.Time()}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// optional maps the empty string onto an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
