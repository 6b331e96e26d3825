package models

import "time"

// Location represents a geographic coordinate
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Scope identifies a presence index partition: a region paired with a
// service capability code. A driver serving multiple capabilities appears
// under one scope per capability.
type Scope struct {
	Region  string `json:"region"`
	Service string `json:"service"`
}

// LocationUpdate represents a driver location tick
type LocationUpdate struct {
	RideID    string    `json:"ride_id,omitempty"`
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

// NearbyDriver represents a driver returned by a geospatial query,
// with its distance from the query point in meters
type NearbyDriver struct {
	DriverID  string   `json:"driver_id"`
	Location  Location `json:"location"`
	DistanceM float64  `json:"distance_m"`
}
