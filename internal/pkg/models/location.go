package models

import "time"

// Location represents a geographic coordinate in decimal degrees
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// Valid reports whether the coordinate lies within the legal ranges
// (-90..90 latitude, -180..180 longitude)
func (l Location) Valid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// LocationUpdate represents a driver location change event
type LocationUpdate struct {
	DriverID  string    `json:"driver_id"`
	Location  Location  `json:"location"`
	Online    bool      `json:"online"`
	CreatedAt time.Time `json:"created_at"`
}
