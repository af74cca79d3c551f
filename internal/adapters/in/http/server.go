package http

import (
	"context"
	"net/http"
	"time"

	"deliveryscheduler/internal/core/application/usecases/commands"
	"deliveryscheduler/internal/core/application/usecases/queries"
	"deliveryscheduler/internal/core/domain/model/calendar"
	"deliveryscheduler/internal/core/domain/model/delivery"
	"deliveryscheduler/internal/core/domain/model/kernel"
	"deliveryscheduler/internal/core/domain/model/source"
	"deliveryscheduler/internal/generated/servers"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"
)

type ScheduleDeliveryHandler interface {
	Handle(ctx context.Context, command commands.ScheduleDeliveryCommand) (commands.ScheduleDeliveryResult, error)
}

type UpdateStatusHandler interface {
	Handle(ctx context.Context, command commands.UpdateStatusCommand) (commands.UpdateStatusResult, error)
}

type UpdateCalendarDayHandler interface {
	Handle(ctx context.Context, command commands.UpdateCalendarDayCommand) (*calendar.Day, error)
}

type GetCalendarHandler interface {
	Handle(ctx context.Context, query queries.GetCalendarQuery) (queries.GetCalendarQueryResponse, error)
}

type ListDeliverablesHandler interface {
	Handle(ctx context.Context, query queries.ListDeliverablesQuery) (queries.ListDeliverablesQueryResponse, error)
}

type GetStatusHistoryHandler interface {
	Handle(ctx context.Context, query queries.GetStatusHistoryQuery) ([]delivery.HistoryEntry, error)
}

type AuditHandler interface {
	Handle(ctx context.Context, query queries.RunConsistencyAuditQuery) ([]queries.Mismatch, error)
}

// SourceResolver maps a public order number onto the source row it names.
type SourceResolver interface {
	FindByPublicReference(ctx context.Context, kind source.Kind, publicReference string) (source.Ref, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	ScheduleDelivery  ScheduleDeliveryHandler
	UpdateStatus      UpdateStatusHandler
	UpdateCalendarDay UpdateCalendarDayHandler
	GetCalendar       GetCalendarHandler
	ListDeliverables  ListDeliverablesHandler
	GetStatusHistory  GetStatusHistoryHandler
	Audit             AuditHandler
	Sources           SourceResolver
}

// Server implements servers.ServerInterface on top of the application use
// cases. Request bodies are checked with the echo validator before any
// command is built.
type Server struct {
	h      Handlers
	logger zerolog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger zerolog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With().Str("component", "http").Logger(),
	}
}

// ScheduleDelivery handles POST /api/v1/schedules.
func (s *Server) ScheduleDelivery(ctx echo.Context, params servers.ScheduleDeliveryParams) error {
	var body servers.NewSchedule
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	var courierID *kernel.UUID
	if body.CourierId != nil {
		id, err := kernel.UUIDFromBytes(body.CourierId[:])
		if err != nil {
			return s.respondError(ctx, err)
		}
		courierID = &id
	}

	var priority delivery.Priority
	if body.Priority != nil {
		priority = delivery.Priority(*body.Priority)
	}

	cmd, err := commands.NewScheduleDeliveryCommand(
		source.Ref{Kind: source.Kind(body.SourceKind), ID: body.SourceId},
		kernel.DateFromTime(body.DeliveryDate.Time),
		deref(body.TimeSlot),
		courierID,
		deref(body.Notes),
		priority,
		actorFrom(params.XActorId, params.XActorName, params.XActorRole),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.h.ScheduleDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.ScheduleResult{
		Schedule:      toSchedule(result.Schedule),
		Bookings:      result.Bookings,
		MaxDeliveries: result.MaxDeliveries,
	})
}

// UpdateScheduleStatus handles PUT /api/v1/schedules/{scheduleId}/status.
func (s *Server) UpdateScheduleStatus(
	ctx echo.Context,
	scheduleID servers.ScheduleId,
	params servers.UpdateScheduleStatusParams,
) error {
	var body servers.StatusUpdate
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	id, err := kernel.UUIDFromBytes(scheduleID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	status, err := delivery.ParseStatus(body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusByIDCommand(
		id, status, deref(body.Notes), actorFrom(params.XActorId, params.XActorName, params.XActorRole),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.updateStatus(ctx, cmd)
}

// UpdateSourceStatus handles PUT /api/v1/sources/{sourceKind}/{sourceId}/status.
// With lookup=reference the id is an order number, custom order id or design id.
func (s *Server) UpdateSourceStatus(
	ctx echo.Context,
	sourceKind servers.SourceKind,
	sourceID string,
	params servers.UpdateSourceStatusParams,
) error {
	var body servers.StatusUpdate
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	kind, err := source.ParseKind(string(sourceKind))
	if err != nil {
		return s.respondError(ctx, err)
	}

	ref := source.Ref{Kind: kind, ID: sourceID}
	if params.Lookup != nil && *params.Lookup == servers.UpdateSourceStatusParamsLookupReference {
		ref, err = s.h.Sources.FindByPublicReference(ctx.Request().Context(), kind, sourceID)
		if err != nil {
			return s.respondError(ctx, err)
		}
	}

	status, err := delivery.ParseStatus(body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusBySourceCommand(
		ref, status, deref(body.Notes), actorFrom(params.XActorId, params.XActorName, params.XActorRole),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return s.updateStatus(ctx, cmd)
}

func (s *Server) updateStatus(ctx echo.Context, cmd commands.UpdateStatusCommand) error {
	result, err := s.h.UpdateStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.StatusUpdateResult{
		Schedule:       toSchedule(result.Schedule),
		PreviousStatus: result.Transition.From.String(),
		Forced:         result.Transition.Forced,
		Warning:        optional(result.Transition.Warning),
	})
}

// GetCalendar handles GET /api/v1/calendar.
func (s *Server) GetCalendar(ctx echo.Context, params servers.GetCalendarParams) error {
	query, err := queries.NewGetCalendarQuery(params.Year, time.Month(params.Month))
	if err != nil {
		return s.respondError(ctx, err)
	}

	month, err := s.h.GetCalendar.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toCalendarMonth(month))
}

// UpdateCalendarDay handles PUT /api/v1/calendar/{date}.
func (s *Server) UpdateCalendarDay(ctx echo.Context, date openapi_types.Date) error {
	var body servers.CalendarDaySettings
	if err := s.bind(ctx, &body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateCalendarDayCommand(kernel.DateFromTime(date.Time), calendar.Settings{
		MaxDeliveries: body.MaxDeliveries,
		IsAvailable:   body.IsAvailable,
		IsHoliday:     body.IsHoliday,
		SpecialNotes:  deref(body.SpecialNotes),
	})
	if err != nil {
		return s.respondError(ctx, err)
	}

	day, err := s.h.UpdateCalendarDay.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	settings := day.Settings()
	return ctx.JSON(http.StatusOK, servers.CalendarDaySettings{
		MaxDeliveries: settings.MaxDeliveries,
		IsAvailable:   settings.IsAvailable,
		IsHoliday:     settings.IsHoliday,
		SpecialNotes:  optional(settings.SpecialNotes),
	})
}

// ListDeliverables handles GET /api/v1/deliverables.
func (s *Server) ListDeliverables(ctx echo.Context, params servers.ListDeliverablesParams) error {
	query, err := queries.NewListDeliverablesQuery(toKinds(params.Kind)...)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response, err := s.h.ListDeliverables.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliverableList(response))
}

// GetStatusHistory handles GET /api/v1/schedules/{scheduleId}/history.
func (s *Server) GetStatusHistory(ctx echo.Context, scheduleID servers.ScheduleId) error {
	id, err := kernel.UUIDFromBytes(scheduleID[:])
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewGetStatusHistoryQuery(id)
	if err != nil {
		return s.respondError(ctx, err)
	}

	entries, err := s.h.GetStatusHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.HistoryEntry, len(entries))
	for i, e := range entries {
		response[i] = toHistoryEntry(e)
	}
	return ctx.JSON(http.StatusOK, response)
}

// RunConsistencyAudit handles GET /api/v1/audit.
func (s *Server) RunConsistencyAudit(ctx echo.Context, params servers.RunConsistencyAuditParams) error {
	query, err := queries.NewRunConsistencyAuditQuery(toKinds(params.Kind)...)
	if err != nil {
		return s.respondError(ctx, err)
	}

	mismatches, err := s.h.Audit.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	report := servers.AuditReport{
		Count:      len(mismatches),
		Mismatches: make([]servers.Mismatch, len(mismatches)),
	}
	for i, m := range mismatches {
		report.Mismatches[i] = toMismatch(m)
	}
	return ctx.JSON(http.StatusOK, report)
}

// bind decodes and validates the request body.
func (s *Server) bind(ctx echo.Context, body any) error {
	if err := ctx.Bind(body); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(body)
}

func actorFrom(id string, name, role *string) delivery.Actor {
	return delivery.Actor{ID: id, Name: deref(name), Role: deref(role)}
}
