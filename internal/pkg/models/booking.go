package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a single seat reservation inside a
// pool ride. Bookings mirror a subset of the ride stages and transition
// independently per passenger.
type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusArrived   BookingStatus = "arrived"
	BookingStatusStarted   BookingStatus = "started"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the booking can never transition again
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Booking represents one passenger's seat within a shared (pool) ride
type Booking struct {
	BookingID   uuid.UUID     `json:"booking_id" db:"booking_id"`
	RideID      uuid.UUID     `json:"ride_id" db:"ride_id"`
	PassengerID uuid.UUID     `json:"passenger_id" db:"passenger_id"`
	Seats       int           `json:"seats" db:"seats"`
	Status      BookingStatus `json:"status" db:"status"`
	FareShare   float64       `json:"fare_share" db:"fare_share"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingEvent is published on booking stage transitions
type BookingEvent struct {
	BookingID   string        `json:"booking_id"`
	RideID      string        `json:"ride_id"`
	PassengerID string        `json:"passenger_id"`
	Status      BookingStatus `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}
