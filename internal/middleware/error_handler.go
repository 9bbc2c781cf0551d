package middleware

import (
	"errors"
	"net/http"

	"github.com/kikao/booking-service/internal/dto"
	"github.com/kikao/booking-service/internal/repository"
	"github.com/kikao/booking-service/internal/validation"
	"github.com/labstack/echo/v4"
)

// ErrorHandler is the single place where repository and validation failures
// become HTTP responses. Handlers return typed errors and never format
// responses themselves.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		_ = c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Message: "validation failed",
			Errors:  verr.Fields,
		})
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, repository.ErrBookingNotFound), errors.Is(err, repository.ErrNoBookings):
		code = http.StatusNotFound
	case errors.Is(err, repository.ErrNotBookingOwner):
		code = http.StatusForbidden
	case errors.Is(err, repository.ErrSaveFailed):
		code, msg = http.StatusInternalServerError, repository.ErrSaveFailed.Error()
	case errors.Is(err, repository.ErrUpdateFailed):
		code, msg = http.StatusInternalServerError, repository.ErrUpdateFailed.Error()
	case errors.Is(err, repository.ErrDeleteFailed):
		code, msg = http.StatusInternalServerError, repository.ErrDeleteFailed.Error()
	default:
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			}
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
