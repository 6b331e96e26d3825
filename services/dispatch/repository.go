package dispatch

import (
	"context"
	"time"

	"github.com/ojekin/dispatch/internal/pkg/models"
)

// OfferRepo defines the ephemeral per-ride offer state operations.
// At most one current offer exists per ride at any time; every offer
// issued for a ride gets a monotonically increasing generation so stale
// timeout callbacks can be recognized.
type OfferRepo interface {
	// SeedCandidates stores the ordered candidate queue and moves the ride
	// into the searching phase.
	SeedCandidates(ctx context.Context, rideID string, driverIDs []string) error

	// PopCandidate removes and returns the next candidate. ok is false when
	// the queue is exhausted.
	PopCandidate(ctx context.Context, rideID string) (driverID string, ok bool, err error)

	// GetPhase returns the ride's ephemeral coordination phase.
	GetPhase(ctx context.Context, rideID string) (models.OfferPhase, error)

	// SetPhase moves the ride to a new coordination phase.
	SetPhase(ctx context.Context, rideID string, phase models.OfferPhase) error

	// SetCurrentOffer records the outstanding offer and returns its
	// generation.
	SetCurrentOffer(ctx context.Context, rideID, driverID string, expiresAt time.Time) (int64, error)

	// GetCurrentOffer returns the outstanding offer, or nil when none.
	GetCurrentOffer(ctx context.Context, rideID string) (*models.CurrentOffer, error)

	// ClearCurrentOffer removes the outstanding offer only if it still
	// belongs to driverID at generation gen. Reports whether it cleared.
	ClearCurrentOffer(ctx context.Context, rideID, driverID string, gen int64) (bool, error)

	// AddRejected marks a driver as already tried for this ride.
	AddRejected(ctx context.Context, rideID, driverID string) error

	// IsRejected reports whether the driver already declined or timed out.
	IsRejected(ctx context.Context, rideID, driverID string) (bool, error)

	// ClearOfferState destroys all ephemeral state for the ride.
	ClearOfferState(ctx context.Context, rideID string) error
}

// RideStateSink abstracts durable writes of canonical ride status during
// matching. Every method is a guarded conditional update over the ride's
// current status; a zero-row update surfaces as apperrors.ErrStateConflict
// and none may assume exclusive access.
type RideStateSink interface {
	SetOffer(ctx context.Context, rideID, driverID string, expireAt time.Time) error
	ReopenRequested(ctx context.Context, rideID string) error
	MarkNoDrivers(ctx context.Context, rideID string) error
	FinalizeOnAccept(ctx context.Context, rideID, driverID string) error
	ClearOffer(ctx context.Context, rideID string) error
	GetRideByID(ctx context.Context, rideID string) (*models.Ride, error)
}

// CandidateSource answers nearby-driver queries for candidate discovery
type CandidateSource interface {
	Nearby(ctx context.Context, scope models.Scope, point *models.Location, radiusM float64, limit int) ([]*models.NearbyDriver, error)
	IsOnline(ctx context.Context, driverID string, scope models.Scope) (bool, error)
}
