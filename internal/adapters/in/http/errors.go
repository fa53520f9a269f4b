package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/services"
	"laundry/internal/generated/servers"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// invalid answers 400 for input a command or query refused to be built from.
func (s *Server) invalid(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: err.Error(),
	})
}

// fail maps an error returned by a use case to a response. Validation errors at this
// point come from the current state of the data, so they are conflicts.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, commands.ErrOrderCodeNotAllocated):
		status, message = http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, services.ErrEmployeeNotFound):
		status, message = http.StatusConflict, err.Error()
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}

	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}
