package constants

// NATS Subjects
const (
	// Ride request lifecycle
	SubjectRideRequested = "ride.requested"
	SubjectRideAccepted  = "ride.accepted"
	SubjectRideRejected  = "ride.rejected"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"

	// Driver geo events
	SubjectLocationUpdate = "location.update"
)
