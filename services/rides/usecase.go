package rides

import (
	"context"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// RideUC defines the ride lifecycle operations
type RideUC interface {
	RequestRide(ctx context.Context, req *models.RideRequest) (*models.Ride, error)
	GetRide(ctx context.Context, rideID string) (*models.Ride, error)

	DriverArrived(ctx context.Context, rideID, driverID string) error
	StartRide(ctx context.Context, rideID, driverID string) error
	CompleteRide(ctx context.Context, rideID, driverID string) error
	CancelRide(ctx context.Context, rideID string, by models.RideStatus) error

	// Pool bookings
	CreateBooking(ctx context.Context, rideID, passengerID string, seats int) (*models.Booking, error)
	ListBookings(ctx context.Context, rideID string) ([]*models.Booking, error)
	ArriveBooking(ctx context.Context, bookingID string) error
	BoardBooking(ctx context.Context, bookingID string) error
	CompleteBooking(ctx context.Context, bookingID string) error
	CancelBooking(ctx context.Context, bookingID string) error
}

// Dispatcher is the slice of the offer coordinator the lifecycle manager
// needs: start matching for a ride and tear matching down on cancel.
type Dispatcher interface {
	DispatchRide(ctx context.Context, ride *models.Ride, preferredDriverID string) error
	CancelDispatch(ctx context.Context, rideID string) error
}
