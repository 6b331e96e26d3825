package rides

import (
	"context"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// RideGW defines the outbound edges of the lifecycle manager. Event
// notifications are best-effort; RequestSettlement returns an error so the
// caller can log the missed hand-off, but a failure never rolls the ride
// back out of completed.
type RideGW interface {
	NotifyRideEvent(ctx context.Context, event models.RideEvent)
	NotifyBookingEvent(ctx context.Context, event models.BookingEvent)
	RequestSettlement(ctx context.Context, req models.SettlementRequest) error
}
