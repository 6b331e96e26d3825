package apperrors

import "errors"

var (
	// Validation failures, rejected before any state mutation
	ErrInvalidLocation = errors.New("invalid location coordinates")
	ErrInvalidRideID   = errors.New("ride_id is required")
	ErrInvalidDriverID = errors.New("driver_id is required")
	ErrInvalidUserID   = errors.New("user_id is required")

	// Lookup failures
	ErrRideNotFound    = errors.New("ride not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrDriverNotFound  = errors.New("driver not found")

	// ErrStateConflict is returned when a guarded transition affected zero
	// rows: the transition was already applied or its precondition no
	// longer holds. Callers treat it as an idempotent no-op and never
	// retry it automatically.
	ErrStateConflict = errors.New("state transition precondition not met")

	// ErrNotCurrentOffer is returned when a driver responds to an offer
	// that is no longer (or never was) addressed to them.
	ErrNotCurrentOffer = errors.New("driver does not hold the current offer")

	// ErrNoActiveOffer is returned when there is no outstanding offer for
	// the ride.
	ErrNoActiveOffer = errors.New("no outstanding offer for ride")
)

// IsStateConflict reports whether err is, or wraps, ErrStateConflict
func IsStateConflict(err error) bool {
	return errors.Is(err, ErrStateConflict)
}
