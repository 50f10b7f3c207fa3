package constants

// WebSocket event types
const (
	// Common events
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	// Ride request events
	EventRideRequested = "ride_requested"
	EventRideAccepted  = "ride_accepted"
	EventRideRejected  = "ride_rejected"
	EventRideCompleted = "ride_completed"
	EventRideCancelled = "ride_cancelled"

	// Driver geo events
	EventLocationUpdate = "location_update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorUnauthorized  = "unauthorized"
	ErrorInternalError = "internal_error"
)
