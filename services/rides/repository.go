package rides

import (
	"context"
	"time"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// RideRepo defines the durable ride store. Every transition method runs a
// guarded conditional update over the ride's current status and returns
// apperrors.ErrStateConflict when the update affects zero rows.
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
	GetRideByID(ctx context.Context, rideID string) (*models.Ride, error)
	GetActiveRideIDByDriver(ctx context.Context, driverID string) (string, error)

	// Matching-time transitions, driven by the offer coordinator
	SetOffer(ctx context.Context, rideID, driverID string, expireAt time.Time) error
	ReopenRequested(ctx context.Context, rideID string) error
	MarkNoDrivers(ctx context.Context, rideID string) error
	FinalizeOnAccept(ctx context.Context, rideID, driverID string) error
	ClearOffer(ctx context.Context, rideID string) error

	// Post-acceptance lifecycle transitions, driven by ride participants
	MarkArrived(ctx context.Context, rideID, driverID string) error
	MarkStarted(ctx context.Context, rideID, driverID string) error
	MarkCompleted(ctx context.Context, rideID, driverID string) error
	CancelRide(ctx context.Context, rideID string, terminal models.RideStatus) error
}

// BookingRepo manages per-passenger seat reservations inside pool rides
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error)
	GetBookingsByRide(ctx context.Context, rideID string) ([]*models.Booking, error)

	// UpdateBookingStatus is guarded on the booking's current status and
	// returns apperrors.ErrStateConflict on zero rows.
	UpdateBookingStatus(ctx context.Context, bookingID string, from []models.BookingStatus, to models.BookingStatus) error

	// CountActiveBookings returns the number of non-terminal bookings on
	// the ride.
	CountActiveBookings(ctx context.Context, rideID string) (int, error)
}
