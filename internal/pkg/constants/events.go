package constants

import "github.com/ojekin/dispatch/internal/pkg/models"

// EventForRideStatus maps a ride status to the WebSocket event pushed to
// the ride channel when the ride enters that status.
func EventForRideStatus(status models.RideStatus) string {
	switch status {
	case models.RideStatusAccepted:
		return EventRideAccepted
	case models.RideStatusNoDrivers:
		return EventRideNoDrivers
	case models.RideStatusArrivedPickup:
		return EventRideArrived
	case models.RideStatusStarted:
		return EventRideStarted
	case models.RideStatusCompleted:
		return EventRideCompleted
	case models.RideStatusCancelledDriver, models.RideStatusCancelledRider, models.RideStatusCancelledSystem:
		return EventRideCancelled
	default:
		return EventRideAccepted
	}
}

// SubjectForRideStatus maps a ride status to its NATS subject
func SubjectForRideStatus(status models.RideStatus) string {
	switch status {
	case models.RideStatusRequested, models.RideStatusScheduled, models.RideStatusReserved:
		return SubjectRideRequested
	case models.RideStatusOffered:
		return SubjectRideOffered
	case models.RideStatusAccepted:
		return SubjectRideAccepted
	case models.RideStatusNoDrivers:
		return SubjectRideNoDrivers
	case models.RideStatusArrivedPickup:
		return SubjectRideArrived
	case models.RideStatusStarted:
		return SubjectRideStarted
	case models.RideStatusCompleted:
		return SubjectRideCompleted
	case models.RideStatusCancelledDriver, models.RideStatusCancelledRider, models.RideStatusCancelledSystem:
		return SubjectRideCancelled
	default:
		return SubjectRideRequested
	}
}
