package models

import "time"

// DriverPresence is the ephemeral record describing a driver's live
// availability. Its lifetime is bounded by a TTL refreshed on every location
// update; it disappears on explicit offline or when the last live
// connection drops.
type DriverPresence struct {
	DriverID string    `json:"driver_id"`
	Region   string    `json:"region"`
	Services []string  `json:"services"`
	Location Location  `json:"location"`
	Geohash  string    `json:"geohash"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"last_seen"`
}

// BeaconEvent signals a driver going online or offline for a scope
type BeaconEvent struct {
	DriverID  string    `json:"driver_id"`
	Scope     Scope     `json:"scope"`
	IsActive  bool      `json:"is_active"`
	Location  Location  `json:"location"`
	ConnID    string    `json:"conn_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
