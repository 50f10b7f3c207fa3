package models

import "time"

// DriverLocation is the current position and availability of a driver.
// The record is owned by the driver's client and overwritten wholesale on
// every update; there are no merge semantics beyond the position fields.
type DriverLocation struct {
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	Geohash   string    `json:"geohash"`
	Online    bool      `json:"online"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NearbyDriver represents a discovery result: a driver and their distance
// from the query origin
type NearbyDriver struct {
	DriverID   string   `json:"driver_id"`
	Location   Location `json:"location"`
	DistanceKm float64  `json:"distance_km"`
}
