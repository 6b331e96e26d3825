package constants

// NATS Subjects
const (
	// Ride lifecycle events
	SubjectRideRequested = "ride.requested"
	SubjectRideOffered   = "ride.offered"
	SubjectRideAccepted  = "ride.accepted"
	SubjectRideNoDrivers = "ride.no_drivers"
	SubjectRideArrived   = "ride.arrived"
	SubjectRideStarted   = "ride.started"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"

	// Driver-facing offer events
	SubjectDriverOffer          = "driver.offer"
	SubjectDriverOfferCancelled = "driver.offer_cancelled"

	// Booking events (pool rides)
	SubjectBookingUpdated = "booking.updated"

	// Driver location ticks mirrored to the active ride
	SubjectRideLocation = "ride.location"

	// Settlement hand-off at ride completion
	SubjectSettlementRequest = "billing.settlement_request"
)
