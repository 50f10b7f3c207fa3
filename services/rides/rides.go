package rides

import (
	"context"

	"github.com/google/uuid"

	"github.com/rickshawlabs/dispatch/internal/pkg/models"
)

// RideRepo defines the interface for ride request persistence
type RideRepo interface {
	CreateRequest(ctx context.Context, req *models.RideRequest) error
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error)

	// SettleRequest atomically accepts a pending request (stamping the
	// accepting driver's name), writes its settlement record and moves it
	// on to completed. Exactly one concurrent caller wins; the rest see
	// ErrInvalidTransition.
	SettleRequest(ctx context.Context, requestID uuid.UUID, driverName string, ride *models.CompletedRide) error

	// UpdateStatus performs a guarded status transition: the row is updated
	// only while it still holds the expected from status.
	UpdateStatus(ctx context.Context, requestID uuid.UUID, from, to models.RideStatus) error

	ListByDriver(ctx context.Context, driverID string, status models.RideStatus) ([]*models.RideRequest, error)
	ListByRider(ctx context.Context, riderID string) ([]*models.RideRequest, error)

	GetRideStats(ctx context.Context) (*models.AdminStats, error)
}

// RideGW defines the interface for publishing ride lifecycle events
type RideGW interface {
	PublishRideRequested(ctx context.Context, req *models.RideRequest) error
	PublishRideAccepted(ctx context.Context, req *models.RideRequest) error
	PublishRideRejected(ctx context.Context, req *models.RideRequest) error
	PublishRideCancelled(ctx context.Context, req *models.RideRequest) error
	PublishRideCompleted(ctx context.Context, ride *models.CompletedRide) error
}

// DriverPool is the availability view the matching flow needs from the geo
// service
type DriverPool interface {
	IsOnline(ctx context.Context, driverID string) (bool, error)
	CountOnline(ctx context.Context) (int, error)
}

// RideUC defines the interface for ride request business logic
type RideUC interface {
	CreateRequest(ctx context.Context, input *models.RideRequestInput) (*models.RideRequest, error)
	Accept(ctx context.Context, requestID uuid.UUID, driverID, driverName string) (*models.RideRequest, error)
	Reject(ctx context.Context, requestID uuid.UUID, driverID string) (*models.RideRequest, error)
	Cancel(ctx context.Context, requestID uuid.UUID, riderID string) (*models.RideRequest, error)
	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error)
	GetIncoming(ctx context.Context, driverID string) ([]*models.RideRequest, error)
	ListByDriver(ctx context.Context, driverID string) ([]*models.RideRequest, error)
	ListByRider(ctx context.Context, riderID string) ([]*models.RideRequest, error)
	GetAdminStats(ctx context.Context) (*models.AdminStats, error)
}
