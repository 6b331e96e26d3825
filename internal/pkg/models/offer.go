package models

import "time"

// OfferPhase is the ephemeral per-ride coordination state
type OfferPhase string

const (
	OfferPhaseSearching OfferPhase = "searching"
	OfferPhaseAssigned  OfferPhase = "assigned"
	OfferPhaseNoDrivers OfferPhase = "no_drivers"
)

// CurrentOffer is the single outstanding offer for a ride. Generation
// increments on every offer issued for the ride so a stale timeout
// callback can recognize that a newer offer superseded its own.
type CurrentOffer struct {
	DriverID   string    `json:"driver_id"`
	Generation int64     `json:"generation"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// JobOffer is the payload pushed to a candidate driver's channel
type JobOffer struct {
	RideID      string    `json:"ride_id"`
	TripType    TripType  `json:"trip_type"`
	ServiceType string    `json:"service_type"`
	Pickup      Location  `json:"pickup"`
	Dropoff     Location  `json:"dropoff"`
	DistanceKm  float64   `json:"distance_km"`
	DurationMin float64   `json:"duration_min"`
	Fare        float64   `json:"fare"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// OfferResponse is a driver's answer to an outstanding offer
type OfferResponse struct {
	RideID   string `json:"ride_id" validate:"required"`
	DriverID string `json:"driver_id" validate:"required"`
	Accept   bool   `json:"accept"`
}
