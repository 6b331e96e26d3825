package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ojekin/dispatch/internal/pkg/apperrors"
	"github.com/ojekin/dispatch/services/presence"
)

// PresenceHandler exposes the driver presence index over HTTP
type PresenceHandler struct {
	presenceUC presence.PresenceUC
}

// NewPresenceHandler creates a new presence HTTP handler
func NewPresenceHandler(presenceUC presence.PresenceUC) *PresenceHandler {
	return &PresenceHandler{presenceUC: presenceUC}
}

// RegisterRoutes registers the presence handler routes
func (h *PresenceHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/drivers/:driverID/presence", h.GetPresence)
}

// GetPresence returns a driver's last known presence record
func (h *PresenceHandler) GetPresence(c echo.Context) error {
	rec, err := h.presenceUC.GetPresence(c.Request().Context(), c.Param("driverID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidDriverID) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if rec == nil {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": apperrors.ErrDriverNotFound.Error(),
		})
	}
	return c.JSON(http.StatusOK, rec)
}
