package scheduler

import (
	"context"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// Dispatcher is the slice of the offer coordinator the poller re-enters
// with claimed rides. CancelDispatch clears any ephemeral offer state a
// recovered ride left behind before it is re-dispatched.
type Dispatcher interface {
	DispatchRide(ctx context.Context, ride *models.Ride, preferredDriverID string) error
	CancelDispatch(ctx context.Context, rideID string) error
}
