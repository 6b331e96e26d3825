package scheduler

import (
	"context"
	"time"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// SchedulerRepo defines the durable operations of the dispatch poller.
// All methods are safe to run from multiple poller instances at once:
// claiming uses row locks with skip-locked, and the other transitions are
// guarded so two pollers never recover or dispatch the same ride.
type SchedulerRepo interface {
	// ReleaseAndClaimDue runs one poll cycle's durable maintenance inside
	// a single transaction: reserved rides whose hold lapsed return to
	// scheduled with the held driver dropped, then due scheduled and
	// reserved rides move to requested, earliest first. Returns the number
	// of reservations released and the claimed rides. A reserved ride
	// claimed before its hold lapsed keeps its driver on the returned row
	// so the caller can use it as a dispatch hint.
	ReleaseAndClaimDue(ctx context.Context, now, due time.Time, limit int) (int64, []*models.Ride, error)

	// ReopenExpiredOffers returns offered rides whose lease timestamp has
	// passed to requested. In-process lease timers die with the process;
	// this is the durable backstop that un-strands their rides.
	ReopenExpiredOffers(ctx context.Context, now time.Time) ([]*models.Ride, error)
}
