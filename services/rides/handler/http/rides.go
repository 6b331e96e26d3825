package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ojekin/dispatch/internal/pkg/models"
	"github.com/ojekin/dispatch/services/dispatch"
	"github.com/ojekin/dispatch/services/rides"
)

// RideHandler handles HTTP requests for ride lifecycle operations
type RideHandler struct {
	rideUC     rides.RideUC
	dispatchUC dispatch.DispatchUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC, dispatchUC dispatch.DispatchUC) *RideHandler {
	return &RideHandler{
		rideUC:     rideUC,
		dispatchUC: dispatchUC,
	}
}

// RegisterRoutes registers the ride handler routes
func (h *RideHandler) RegisterRoutes(e *echo.Echo) {
	rideGroup := e.Group("/rides")
	rideGroup.POST("", h.CreateRide)
	rideGroup.GET("/:rideID", h.GetRide)
	rideGroup.POST("/:rideID/cancel", h.CancelRide)
	rideGroup.POST("/:rideID/accept", h.AcceptOffer)
	rideGroup.POST("/:rideID/reject", h.RejectOffer)
	rideGroup.POST("/:rideID/arrive", h.DriverArrived)
	rideGroup.POST("/:rideID/start", h.StartRide)
	rideGroup.POST("/:rideID/complete", h.CompleteRide)
	rideGroup.POST("/:rideID/bookings", h.CreateBooking)
	rideGroup.GET("/:rideID/bookings", h.ListBookings)

	bookingGroup := e.Group("/bookings")
	bookingGroup.POST("/:bookingID/arrive", h.ArriveBooking)
	bookingGroup.POST("/:bookingID/board", h.BoardBooking)
	bookingGroup.POST("/:bookingID/complete", h.CompleteBooking)
	bookingGroup.POST("/:bookingID/cancel", h.CancelBooking)
}

// CreateRide handles ride creation requests
func (h *RideHandler) CreateRide(c echo.Context) error {
	var req models.RideRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	ride, err := h.rideUC.RequestRide(c.Request().Context(), &req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, ride)
}

// GetRide returns a ride by ID
func (h *RideHandler) GetRide(c echo.Context) error {
	ride, err := h.rideUC.GetRide(c.Request().Context(), c.Param("rideID"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, ride)
}

// CancelRequest carries who is cancelling the ride
type CancelRequest struct {
	By string `json:"by"`
}

// CancelRide cancels a ride on behalf of a rider, driver or operator
func (h *RideHandler) CancelRide(c echo.Context) error {
	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	var terminal models.RideStatus
	switch req.By {
	case "driver":
		terminal = models.RideStatusCancelledDriver
	case "rider", "":
		terminal = models.RideStatusCancelledRider
	case "system":
		terminal = models.RideStatusCancelledSystem
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "by must be one of rider, driver, system",
		})
	}

	if err := h.rideUC.CancelRide(c.Request().Context(), c.Param("rideID"), terminal); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// OfferActionRequest identifies the driver answering an offer
type OfferActionRequest struct {
	DriverID string `json:"driver_id"`
}

// AcceptOffer handles a driver accepting the current offer
func (h *RideHandler) AcceptOffer(c echo.Context) error {
	var req OfferActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	ride, err := h.dispatchUC.AcceptOffer(c.Request().Context(), c.Param("rideID"), req.DriverID)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, ride)
}

// RejectOffer handles a driver declining the current offer
func (h *RideHandler) RejectOffer(c echo.Context) error {
	var req OfferActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if err := h.dispatchUC.RejectOffer(c.Request().Context(), c.Param("rideID"), req.DriverID); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// DriverArrived marks the driver at the pickup point
func (h *RideHandler) DriverArrived(c echo.Context) error {
	return h.stageTransition(c, h.rideUC.DriverArrived)
}

// StartRide begins the trip
func (h *RideHandler) StartRide(c echo.Context) error {
	return h.stageTransition(c, h.rideUC.StartRide)
}

// CompleteRide finishes the trip
func (h *RideHandler) CompleteRide(c echo.Context) error {
	return h.stageTransition(c, h.rideUC.CompleteRide)
}

func (h *RideHandler) stageTransition(c echo.Context, fn func(ctx context.Context, rideID, driverID string) error) error {
	var req OfferActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}
	if req.DriverID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "driver_id is required",
		})
	}

	if err := fn(c.Request().Context(), c.Param("rideID"), req.DriverID); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
