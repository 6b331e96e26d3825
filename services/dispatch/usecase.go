package dispatch

import (
	"context"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// DispatchUC defines the offer coordinator interface. One conceptual offer
// loop runs per active ride; rides never block each other.
type DispatchUC interface {
	// DispatchRide seeds the candidate queue for the ride and starts the
	// sequential offer protocol. preferredDriverID, when non-empty and
	// online, is tried before the nearest candidate.
	DispatchRide(ctx context.Context, ride *models.Ride, preferredDriverID string) error

	// AcceptOffer finalizes the ride on the driver holding the current
	// offer. Returns apperrors.ErrNotCurrentOffer for anyone else. A
	// repeated accept from the same driver is a no-op, not an error.
	AcceptOffer(ctx context.Context, rideID, driverID string) (*models.Ride, error)

	// RejectOffer is an explicit decline: same effect as a lease timeout,
	// applied immediately.
	RejectOffer(ctx context.Context, rideID, driverID string) error

	// CancelDispatch tears down the ride's ephemeral offer state, notifying
	// the currently offered driver if any. Used by ride-level cancellation.
	CancelDispatch(ctx context.Context, rideID string) error
}
