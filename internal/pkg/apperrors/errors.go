// Package apperrors defines the sentinel errors shared across services.
// Callers classify failures with errors.Is and map them to transport codes
// at the handler edge.
package apperrors

import "errors"

var (
	// ErrInvalidCoordinate indicates a latitude/longitude outside the legal
	// ranges (-90..90, -180..180)
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrDriverUnavailable indicates the targeted driver is offline or unknown
	ErrDriverUnavailable = errors.New("driver unavailable")

	// ErrInvalidTransition indicates a ride status change that the state
	// machine does not allow, including losing a concurrent accept/reject race
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrUnauthorized indicates the acting party does not own the record
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")
)
