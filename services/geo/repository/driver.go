package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/rickshawlabs/dispatch/internal/pkg/apperrors"
	"github.com/rickshawlabs/dispatch/internal/pkg/constants"
	"github.com/rickshawlabs/dispatch/internal/pkg/database"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/internal/utils"
	"github.com/rickshawlabs/dispatch/services/geo"
)

// geoRadiusPadding widens the Redis prefilter radius so that rounding
// differences between the Redis geo model and our own distance formula can
// never drop a driver sitting right on the boundary. Exact filtering happens
// afterwards in FindNearby.
const geoRadiusPadding = 1.05

type geoRepo struct {
	redisClient *database.RedisClient
}

// NewGeoRepository creates a new driver location repository backed by Redis
func NewGeoRepository(redisClient *database.RedisClient) geo.GeoRepo {
	return &geoRepo{
		redisClient: redisClient,
	}
}

// UpsertLocation overwrites the driver's location record: the per-driver
// hash, the GEO set entry and the online/index sets
func (r *geoRepo) UpsertLocation(ctx context.Context, driver *models.DriverLocation) error {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driver.DriverID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(driver.Location.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(driver.Location.Longitude, 'f', -1, 64),
		constants.FieldGeohash:   driver.Geohash,
		constants.FieldOnline:    strconv.FormatBool(driver.Online),
		constants.FieldTimestamp: strconv.FormatInt(driver.UpdatedAt.Unix(), 10),
	}

	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo,
		driver.Location.Longitude, driver.Location.Latitude, driver.DriverID); err != nil {
		return fmt.Errorf("failed to add driver to geo set: %w", err)
	}

	if err := r.redisClient.SAdd(ctx, constants.KeyDriverIndex, driver.DriverID); err != nil {
		return fmt.Errorf("failed to index driver: %w", err)
	}

	if driver.Online {
		if err := r.redisClient.SAdd(ctx, constants.KeyOnlineDrivers, driver.DriverID); err != nil {
			return fmt.Errorf("failed to mark driver online: %w", err)
		}
	} else {
		if err := r.redisClient.SRem(ctx, constants.KeyOnlineDrivers, driver.DriverID); err != nil {
			return fmt.Errorf("failed to mark driver offline: %w", err)
		}
	}

	return nil
}

// GetDriverLocation returns the committed location record for a driver
func (r *geoRepo) GetDriverLocation(ctx context.Context, driverID string) (*models.DriverLocation, error) {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	values, err := r.redisClient.HGetAll(ctx, locationKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("driver %s: %w", driverID, apperrors.ErrNotFound)
	}

	lat, err := strconv.ParseFloat(values[constants.FieldLatitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude for driver %s: %w", driverID, err)
	}
	lng, err := strconv.ParseFloat(values[constants.FieldLongitude], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude for driver %s: %w", driverID, err)
	}
	online, _ := strconv.ParseBool(values[constants.FieldOnline])

	return &models.DriverLocation{
		DriverID: driverID,
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
		},
		Geohash: values[constants.FieldGeohash],
		Online:  online,
	}, nil
}

// FindNearby returns drivers within radiusKm of origin, nearest first, ties
// broken by driver id. The GEO set narrows the candidate list; the reported
// distance and the radius cut-off come from our own haversine over the
// committed hash, so results are exact.
func (r *geoRepo) FindNearby(ctx context.Context, origin models.Location, radiusKm float64, onlineOnly bool) ([]models.NearbyDriver, error) {
	candidates, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo,
		origin.Longitude, origin.Latitude, radiusKm*geoRadiusPadding, "km")
	if err != nil {
		return nil, fmt.Errorf("failed to query geo set: %w", err)
	}

	nearby := make([]models.NearbyDriver, 0, len(candidates))
	for _, candidate := range candidates {
		driver, err := r.GetDriverLocation(ctx, candidate.Name)
		if errors.Is(err, apperrors.ErrNotFound) {
			// A geo entry without a hash means the driver was removed
			// between the two reads; skip it.
			continue
		}
		if err != nil {
			return nil, err
		}
		if onlineOnly && !driver.Online {
			continue
		}

		distance := utils.CalculateDistance(origin, driver.Location)
		if distance > radiusKm {
			continue
		}

		nearby = append(nearby, models.NearbyDriver{
			DriverID:   driver.DriverID,
			Location:   driver.Location,
			DistanceKm: distance,
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		if nearby[i].DistanceKm != nearby[j].DistanceKm {
			return nearby[i].DistanceKm < nearby[j].DistanceKm
		}
		return nearby[i].DriverID < nearby[j].DriverID
	})

	return nearby, nil
}

// RemoveDriver removes all traces of a driver. Removing an unknown driver is
// a no-op.
func (r *geoRepo) RemoveDriver(ctx context.Context, driverID string) error {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)

	if err := r.redisClient.Delete(ctx, locationKey); err != nil {
		return fmt.Errorf("failed to delete driver location: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo set: %w", err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyOnlineDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from online set: %w", err)
	}
	if err := r.redisClient.SRem(ctx, constants.KeyDriverIndex, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from index: %w", err)
	}

	return nil
}

// IsOnline reports whether the driver is currently marked online
func (r *geoRepo) IsOnline(ctx context.Context, driverID string) (bool, error) {
	online, err := r.redisClient.SIsMember(ctx, constants.KeyOnlineDrivers, driverID)
	if err != nil {
		return false, fmt.Errorf("failed to check driver availability: %w", err)
	}
	return online, nil
}

// CountOnline returns the number of drivers currently online
func (r *geoRepo) CountOnline(ctx context.Context) (int, error) {
	count, err := r.redisClient.SCard(ctx, constants.KeyOnlineDrivers)
	if err != nil {
		return 0, fmt.Errorf("failed to count online drivers: %w", err)
	}
	return int(count), nil
}
