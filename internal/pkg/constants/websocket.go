package constants

import "fmt"

// WebSocket event types
const (
	// Common events
	EventError       = "error"
	EventPing        = "ping"
	EventPong        = "pong"
	EventSubscribe   = "subscribe"
	EventUnsubscribe = "unsubscribe"

	// Driver presence events
	EventBeaconUpdate   = "beacon_update"
	EventLocationUpdate = "location_update"

	// Offer events
	EventJobOffer       = "job_offer"
	EventOfferCancelled = "offer_cancelled"
	EventOfferResponse  = "offer_response"

	// Ride stage events
	EventRideAccepted  = "ride_accepted"
	EventRideNoDrivers = "ride_no_drivers"
	EventRideArrived   = "ride_arrived"
	EventRideStarted   = "ride_started"
	EventRideCompleted = "ride_completed"
	EventRideCancelled = "ride_cancelled"
	EventRideLocation  = "ride_location"

	// Booking stage events (pool rides)
	EventBookingUpdated = "booking_updated"
)

// Connection roles carried in the JWT claims
const (
	RoleDriver    = "driver"
	RolePassenger = "passenger"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorValidationFailed = "validation_failed"
	ErrorNotCurrentOffer  = "not_current_offer"
	ErrorInternal         = "internal_error"
)

// Channel address helpers. Fan-out is addressed by three channel kinds:
// per ride, per driver and per passenger.
func RideChannel(rideID string) string      { return fmt.Sprintf("ride:%s", rideID) }
func DriverChannel(driverID string) string  { return fmt.Sprintf("driver:%s", driverID) }
func PassengerChannel(userID string) string { return fmt.Sprintf("passenger:%s", userID) }
