package dispatch

import (
	"context"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// DispatchGW defines how the coordinator pushes events out: a job offer to
// one driver's channel, a cancellation to a driver that timed out, and
// stage updates to the ride's channel. Delivery is best-effort; gateway
// failures are logged by the implementation and never bubble back into the
// offer loop.
type DispatchGW interface {
	NotifyJobOffer(ctx context.Context, driverID string, offer models.JobOffer)
	NotifyOfferCancelled(ctx context.Context, driverID, rideID string)
	NotifyRideEvent(ctx context.Context, event models.RideEvent)
}
