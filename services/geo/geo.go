package geo

import (
	"context"

	"github.com/rickshawlabs/dispatch/internal/pkg/models"
)

// GeoRepo defines the interface for driver location data access
type GeoRepo interface {
	UpsertLocation(ctx context.Context, driver *models.DriverLocation) error
	GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error)
	FindNearby(ctx context.Context, origin models.Location, radiusKm float64, onlineOnly bool) ([]models.NearbyDriver, error)
	RemoveDriver(ctx context.Context, driverID string) error
	IsOnline(ctx context.Context, driverID string) (bool, error)
	CountOnline(ctx context.Context) (int, error)
}

// GeoGW defines the interface for publishing driver geo events
type GeoGW interface {
	PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error
}

// GeoUC defines the interface for driver location business logic
type GeoUC interface {
	UpdateLocation(ctx context.Context, driverID string, loc models.Location, online bool) (*models.DriverLocation, error)
	FindNearby(ctx context.Context, origin models.Location, radiusKm float64, onlineOnly bool) ([]models.NearbyDriver, error)
	RemoveDriver(ctx context.Context, driverID string) error
	IsOnline(ctx context.Context, driverID string) (bool, error)
	CountOnline(ctx context.Context) (int, error)
}
