package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride request
type RideStatus string

const (
	RideStatusPending   RideStatus = "pending"
	RideStatusAccepted  RideStatus = "accepted"
	RideStatusRejected  RideStatus = "rejected"
	RideStatusCompleted RideStatus = "completed"
	RideStatusCancelled RideStatus = "cancelled"
)

// AllowedTransitions is the ride request state machine. rejected, completed
// and cancelled are terminal.
var AllowedTransitions = map[RideStatus][]RideStatus{
	RideStatusPending:  {RideStatusAccepted, RideStatusRejected, RideStatusCancelled},
	RideStatusAccepted: {RideStatusCompleted},
}

// CanTransition reports whether from -> to is a legal status transition
func CanTransition(from, to RideStatus) bool {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// RideRequestInput carries the fields a rider submits when requesting a ride
type RideRequestInput struct {
	RiderID   string   `json:"rider_id"`
	RiderName string   `json:"rider_name"`
	DriverID  string   `json:"driver_id"`
	Pickup    Location `json:"pickup"`
	Drop      Location `json:"drop"`
}

// RideRequest represents a rider's request targeted at a specific driver.
// DistanceKm and FareEstimate are computed once at creation and never
// recomputed, regardless of later driver movement.
type RideRequest struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	RiderID      string     `json:"rider_id" db:"rider_id"`
	RiderName    string     `json:"rider_name" db:"rider_name"`
	DriverID     string     `json:"driver_id" db:"driver_id"`
	DriverName   string     `json:"driver_name" db:"driver_name"`
	PickupLat    float64    `json:"pickup_lat" db:"pickup_lat"`
	PickupLng    float64    `json:"pickup_lng" db:"pickup_lng"`
	DropLat      float64    `json:"drop_lat" db:"drop_lat"`
	DropLng      float64    `json:"drop_lng" db:"drop_lng"`
	DistanceKm   float64    `json:"distance_km" db:"distance_km"`
	FareEstimate float64    `json:"fare_estimate" db:"fare_estimate"`
	Status       RideStatus `json:"status" db:"status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Pickup returns the pickup point as a Location
func (r *RideRequest) Pickup() Location {
	return Location{Latitude: r.PickupLat, Longitude: r.PickupLng}
}

// Drop returns the drop point as a Location
func (r *RideRequest) Drop() Location {
	return Location{Latitude: r.DropLat, Longitude: r.DropLng}
}

// CompletedRide is the immutable settlement record created when a request is
// accepted. Distance and fare are copied verbatim from the request; commission
// is the configured flat amount per ride.
type CompletedRide struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RequestID   uuid.UUID `json:"request_id" db:"request_id"`
	RiderID     string    `json:"rider_id" db:"rider_id"`
	DriverID    string    `json:"driver_id" db:"driver_id"`
	PickupLat   float64   `json:"pickup_lat" db:"pickup_lat"`
	PickupLng   float64   `json:"pickup_lng" db:"pickup_lng"`
	DropLat     float64   `json:"drop_lat" db:"drop_lat"`
	DropLng     float64   `json:"drop_lng" db:"drop_lng"`
	DistanceKm  float64   `json:"distance_km" db:"distance_km"`
	Fare        float64   `json:"fare" db:"fare"`
	Commission  float64   `json:"commission" db:"commission"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
}
