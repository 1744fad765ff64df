package http

import (
	"errors"
	"net/http"

	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/core/domain/model/tracking"
	"github.com/MianSuleman600/Colala-Store-Project-sub001/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto HTTP status codes and client messages.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, tracking.ErrDeliveryCodeMismatch):
		return http.StatusUnprocessableEntity, tracking.ErrDeliveryCodeMismatch.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, "tracker not found"
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, "tracker already exists"
	case errors.Is(err, errs.ErrTransitionIsInvalid):
		return http.StatusConflict, err.Error()
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func (s *Server) writeError(c echo.Context, err error) error {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err)
	}

	return c.JSON(status, ErrorResponse{Code: status, Message: message})
}

func (s *Server) badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "Invalid request: " + err.Error(),
	})
}
