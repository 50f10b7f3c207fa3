package usecase

import (
	"context"
	"fmt"

	"github.com/rickshawlabs/dispatch/internal/pkg/apperrors"
	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/internal/utils"
)

// UpdateLocation validates and commits a driver location update, then
// publishes the change for interested subscribers. The stored record is
// replaced wholesale.
func (uc *GeoUC) UpdateLocation(ctx context.Context, driverID string, loc models.Location, online bool) (*models.DriverLocation, error) {
	if !loc.Valid() {
		return nil, fmt.Errorf("lat=%f lng=%f: %w", loc.Latitude, loc.Longitude, apperrors.ErrInvalidCoordinate)
	}

	driver := &models.DriverLocation{
		DriverID:  driverID,
		Location:  loc,
		Geohash:   utils.EncodeLocation(loc, utils.GeohashPrecision),
		Online:    online,
		UpdatedAt: models.Now(),
	}

	if err := uc.geoRepo.UpsertLocation(ctx, driver); err != nil {
		return nil, err
	}

	update := &models.LocationUpdate{
		DriverID:  driverID,
		Location:  loc,
		Online:    online,
		CreatedAt: driver.UpdatedAt,
	}
	if err := uc.geoGW.PublishLocationUpdate(ctx, update); err != nil {
		// The write is committed; notification delivery is best effort
		logger.Warn("Failed to publish location update",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}

	return driver, nil
}

// FindNearby returns drivers within radiusKm of origin, nearest first.
// A non-positive radius falls back to the configured search radius.
func (uc *GeoUC) FindNearby(ctx context.Context, origin models.Location, radiusKm float64, onlineOnly bool) ([]models.NearbyDriver, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("lat=%f lng=%f: %w", origin.Latitude, origin.Longitude, apperrors.ErrInvalidCoordinate)
	}

	if radiusKm <= 0 {
		radiusKm = uc.cfg.Match.SearchRadiusKm
	}

	return uc.geoRepo.FindNearby(ctx, origin, radiusKm, onlineOnly)
}

// RemoveDriver removes a driver from the index. Unknown drivers are a no-op.
func (uc *GeoUC) RemoveDriver(ctx context.Context, driverID string) error {
	return uc.geoRepo.RemoveDriver(ctx, driverID)
}

// IsOnline reports whether a driver is currently online
func (uc *GeoUC) IsOnline(ctx context.Context, driverID string) (bool, error) {
	return uc.geoRepo.IsOnline(ctx, driverID)
}

// CountOnline returns the number of drivers currently online
func (uc *GeoUC) CountOnline(ctx context.Context) (int, error) {
	return uc.geoRepo.CountOnline(ctx)
}
