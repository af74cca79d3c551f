package http

import (
	"errors"
	"net/http"

	"deliveryscheduler/internal/generated/servers"
	"deliveryscheduler/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// respondError maps domain errors onto status codes. Anything unrecognized is
// logged and reported as a bare 500.
func (s *Server) respondError(ctx echo.Context, err error) error {
	var (
		full       *errs.CapacityExceededError
		transition *errs.InvalidTransitionError
		invalid    validator.ValidationErrors
	)

	switch {
	case errors.As(err, &full):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
			Date:    &full.Date,
			Current: &full.Current,
			Max:     &full.Max,
		})
	case errors.As(err, &transition):
		return ctx.JSON(http.StatusUnprocessableEntity, servers.Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
			From:    &transition.From,
			To:      &transition.To,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.As(err, &invalid),
		errors.Is(err, errs.ErrNotEligible),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	}

	s.logger.Error().Err(err).
		Str("method", ctx.Request().Method).
		Str("path", ctx.Path()).
		Msg("request failed")

	return ctx.JSON(http.StatusInternalServerError, servers.Error{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
