package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/internal/pkg/logger"
)

// mapError translates domain errors into HTTP responses. Guarded state
// transitions that lost their race surface as 409 so clients can refetch
// and reconcile instead of retrying blindly.
func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrRideNotFound),
		errors.Is(err, apperrors.ErrBookingNotFound),
		errors.Is(err, apperrors.ErrDriverNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrStateConflict),
		errors.Is(err, apperrors.ErrNotCurrentOffer),
		errors.Is(err, apperrors.ErrNoActiveOffer):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidLocation),
		errors.Is(err, apperrors.ErrInvalidRideID),
		errors.Is(err, apperrors.ErrInvalidDriverID),
		errors.Is(err, apperrors.ErrInvalidUserID):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		logger.Error("unhandled request error",
			logger.String("path", c.Path()),
			logger.Err(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal server error"})
	}
}
