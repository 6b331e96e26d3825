package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the canonical status of a ride
type RideStatus string

const (
	RideStatusRequested       RideStatus = "requested"
	RideStatusOffered         RideStatus = "offered"
	RideStatusAccepted        RideStatus = "accepted"
	RideStatusArrivedPickup   RideStatus = "arrived_pickup"
	RideStatusStarted         RideStatus = "started"
	RideStatusCompleted       RideStatus = "completed"
	RideStatusNoDrivers       RideStatus = "no_drivers"
	RideStatusScheduled       RideStatus = "scheduled"
	RideStatusReserved        RideStatus = "reserved"
	RideStatusCancelledDriver RideStatus = "cancelled_driver"
	RideStatusCancelledRider  RideStatus = "cancelled_rider"
	RideStatusCancelledSystem RideStatus = "cancelled_system"
	RideStatusFailed          RideStatus = "failed"
)

// IsTerminal reports whether a ride in this status can never transition again
func (s RideStatus) IsTerminal() bool {
	switch s {
	case RideStatusCompleted, RideStatusNoDrivers,
		RideStatusCancelledDriver, RideStatusCancelledRider,
		RideStatusCancelledSystem, RideStatusFailed:
		return true
	}
	return false
}

// TripType distinguishes how a ride is requested and dispatched
type TripType string

const (
	TripTypeInstant   TripType = "instant"
	TripTypePool      TripType = "pool"
	TripTypeScheduled TripType = "scheduled"
)

// Ride represents a canonical transportation request
type Ride struct {
	RideID      uuid.UUID  `json:"ride_id"`
	PassengerID uuid.UUID  `json:"passenger_id"`
	DriverID    *uuid.UUID `json:"driver_id,omitempty"`
	Status      RideStatus `json:"status"`
	TripType    TripType   `json:"trip_type"`
	Region      string     `json:"region"`
	ServiceType string     `json:"service_type"`
	Pickup      Location   `json:"pickup"`
	Dropoff     Location   `json:"dropoff"`
	DistanceKm  float64    `json:"distance_km"`
	DurationMin float64    `json:"duration_min"`
	Fare        float64    `json:"fare"`

	// Current outstanding offer, set only while status is offered
	OfferDriverID  *uuid.UUID `json:"offer_driver_id,omitempty"`
	OfferExpiresAt *time.Time `json:"offer_expires_at,omitempty"`

	// Pool batch the ride belongs to, if any
	PoolBatchID *uuid.UUID `json:"pool_batch_id,omitempty"`

	// Scheduled rides: planned pickup time and optional reservation hold
	ScheduledAt          *time.Time `json:"scheduled_at,omitempty"`
	ReservationExpiresAt *time.Time `json:"reservation_expires_at,omitempty"`

	RequestedAt time.Time  `json:"requested_at"`
	AcceptedAt  *time.Time `json:"accepted_at,omitempty"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// RideDTO flattens the nested Location structs for database operations
type RideDTO struct {
	RideID      uuid.UUID  `db:"ride_id"`
	PassengerID uuid.UUID  `db:"passenger_id"`
	DriverID    *uuid.UUID `db:"driver_id"`
	Status      RideStatus `db:"status"`
	TripType    TripType   `db:"trip_type"`
	Region      string     `db:"region"`
	ServiceType string     `db:"service_type"`
	PickupLat   float64    `db:"pickup_latitude"`
	PickupLng   float64    `db:"pickup_longitude"`
	DropoffLat  float64    `db:"dropoff_latitude"`
	DropoffLng  float64    `db:"dropoff_longitude"`
	DistanceKm  float64    `db:"distance_km"`
	DurationMin float64    `db:"duration_min"`
	Fare        float64    `db:"fare"`

	OfferDriverID  *uuid.UUID `db:"offer_driver_id"`
	OfferExpiresAt *time.Time `db:"offer_expires_at"`

	PoolBatchID *uuid.UUID `db:"pool_batch_id"`

	ScheduledAt          *time.Time `db:"scheduled_at"`
	ReservationExpiresAt *time.Time `db:"reservation_expires_at"`

	RequestedAt time.Time  `db:"requested_at"`
	AcceptedAt  *time.Time `db:"accepted_at"`
	ArrivedAt   *time.Time `db:"arrived_at"`
	StartedAt   *time.Time `db:"started_at"`
	CompletedAt *time.Time `db:"completed_at"`
	CancelledAt *time.Time `db:"cancelled_at"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// ToDTO converts a Ride to a RideDTO
func (r *Ride) ToDTO() *RideDTO {
	return &RideDTO{
		RideID:               r.RideID,
		PassengerID:          r.PassengerID,
		DriverID:             r.DriverID,
		Status:               r.Status,
		TripType:             r.TripType,
		Region:               r.Region,
		ServiceType:          r.ServiceType,
		PickupLat:            r.Pickup.Latitude,
		PickupLng:            r.Pickup.Longitude,
		DropoffLat:           r.Dropoff.Latitude,
		DropoffLng:           r.Dropoff.Longitude,
		DistanceKm:           r.DistanceKm,
		DurationMin:          r.DurationMin,
		Fare:                 r.Fare,
		OfferDriverID:        r.OfferDriverID,
		OfferExpiresAt:       r.OfferExpiresAt,
		PoolBatchID:          r.PoolBatchID,
		ScheduledAt:          r.ScheduledAt,
		ReservationExpiresAt: r.ReservationExpiresAt,
		RequestedAt:          r.RequestedAt,
		AcceptedAt:           r.AcceptedAt,
		ArrivedAt:            r.ArrivedAt,
		StartedAt:            r.StartedAt,
		CompletedAt:          r.CompletedAt,
		CancelledAt:          r.CancelledAt,
		CreatedAt:            r.CreatedAt,
		UpdatedAt:            r.UpdatedAt,
	}
}

// ToRide converts a RideDTO back to a Ride
func (dto *RideDTO) ToRide() *Ride {
	return &Ride{
		RideID:      dto.RideID,
		PassengerID: dto.PassengerID,
		DriverID:    dto.DriverID,
		Status:      dto.Status,
		TripType:    dto.TripType,
		Region:      dto.Region,
		ServiceType: dto.ServiceType,
		Pickup: Location{
			Latitude:  dto.PickupLat,
			Longitude: dto.PickupLng,
		},
		Dropoff: Location{
			Latitude:  dto.DropoffLat,
			Longitude: dto.DropoffLng,
		},
		DistanceKm:           dto.DistanceKm,
		DurationMin:          dto.DurationMin,
		Fare:                 dto.Fare,
		OfferDriverID:        dto.OfferDriverID,
		OfferExpiresAt:       dto.OfferExpiresAt,
		PoolBatchID:          dto.PoolBatchID,
		ScheduledAt:          dto.ScheduledAt,
		ReservationExpiresAt: dto.ReservationExpiresAt,
		RequestedAt:          dto.RequestedAt,
		AcceptedAt:           dto.AcceptedAt,
		ArrivedAt:            dto.ArrivedAt,
		StartedAt:            dto.StartedAt,
		CompletedAt:          dto.CompletedAt,
		CancelledAt:          dto.CancelledAt,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
	}
}

// RideRequest is the payload for creating a new ride
type RideRequest struct {
	PassengerID string    `json:"passenger_id" validate:"required"`
	TripType    TripType  `json:"trip_type"`
	Region      string    `json:"region" validate:"required"`
	ServiceType string    `json:"service_type" validate:"required"`
	Pickup      Location  `json:"pickup"`
	Dropoff     Location  `json:"dropoff"`
	DistanceKm  float64   `json:"distance_km"`
	DurationMin float64   `json:"duration_min"`
	Fare        float64   `json:"fare"`
	Seats       int       `json:"seats,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at,omitempty"`

	// Optional pre-assigned driver for scheduled rides
	ReservedDriverID   string    `json:"reserved_driver_id,omitempty"`
	ReservationHoldEnd time.Time `json:"reservation_hold_end,omitempty"`
}

// RideEvent is published to NATS and fanned out to ride channels on every
// stage transition
type RideEvent struct {
	RideID    string     `json:"ride_id"`
	Status    RideStatus `json:"status"`
	DriverID  string     `json:"driver_id,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// SettlementRequest is handed to the fare/settlement collaborator when a
// ride completes
type SettlementRequest struct {
	RideID      string   `json:"ride_id"`
	DriverID    string   `json:"driver_id"`
	ServiceType string   `json:"service_type"`
	TripType    TripType `json:"trip_type"`
	BaseAmount  float64  `json:"base_amount"`
}
