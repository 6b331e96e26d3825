package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// BookingRequest reserves seats on a pool ride
type BookingRequest struct {
	PassengerID string `json:"passenger_id"`
	Seats       int    `json:"seats"`
}

// CreateBooking adds a passenger's seat to a pool ride
func (h *RideHandler) CreateBooking(c echo.Context) error {
	var req BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}
	if req.PassengerID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "passenger_id is required",
		})
	}

	booking, err := h.rideUC.CreateBooking(c.Request().Context(), c.Param("rideID"), req.PassengerID, req.Seats)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusCreated, booking)
}

// ListBookings returns every booking on a ride
func (h *RideHandler) ListBookings(c echo.Context) error {
	bookings, err := h.rideUC.ListBookings(c.Request().Context(), c.Param("rideID"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// ArriveBooking records the driver at a pool passenger's pickup point
func (h *RideHandler) ArriveBooking(c echo.Context) error {
	if err := h.rideUC.ArriveBooking(c.Request().Context(), c.Param("bookingID")); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// BoardBooking marks a pool passenger as on board
func (h *RideHandler) BoardBooking(c echo.Context) error {
	if err := h.rideUC.BoardBooking(c.Request().Context(), c.Param("bookingID")); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CompleteBooking drops a pool passenger off
func (h *RideHandler) CompleteBooking(c echo.Context) error {
	if err := h.rideUC.CompleteBooking(c.Request().Context(), c.Param("bookingID")); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// CancelBooking withdraws a seat before boarding
func (h *RideHandler) CancelBooking(c echo.Context) error {
	if err := h.rideUC.CancelBooking(c.Request().Context(), c.Param("bookingID")); err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
