package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickshawlabs/dispatch/internal/pkg/apperrors"
	"github.com/rickshawlabs/dispatch/internal/pkg/database"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/internal/utils"
	"github.com/rickshawlabs/dispatch/services/geo"
)

func setupTestRepo(t *testing.T) (geo.GeoRepo, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewGeoRepository(&database.RedisClient{Client: client}), mr
}

func driverAt(id string, lat, lng float64, online bool) *models.DriverLocation {
	loc := models.Location{Latitude: lat, Longitude: lng}
	return &models.DriverLocation{
		DriverID:  id,
		Location:  loc,
		Geohash:   utils.EncodeLocation(loc, utils.GeohashPrecision),
		Online:    online,
		UpdatedAt: time.Now().UTC(),
	}
}

func TestUpsertAndGetDriverLocation(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("d1", 28.625, 77.215, true)))

	assert.True(t, mr.Exists("driver:location:d1"))

	got, err := repo.GetDriverLocation(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, "d1", got.DriverID)
	assert.Equal(t, 28.625, got.Location.Latitude)
	assert.Equal(t, 77.215, got.Location.Longitude)
	assert.True(t, got.Online)
	assert.NotEmpty(t, got.Geohash)
}

func TestUpsertOverwritesWholeRecord(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("d1", 28.625, 77.215, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("d1", 28.700, 77.300, false)))

	got, err := repo.GetDriverLocation(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, 28.700, got.Location.Latitude)
	assert.False(t, got.Online)

	online, err := repo.IsOnline(ctx, "d1")
	require.NoError(t, err)
	assert.False(t, online)
}

func TestGetDriverLocationNotFound(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.GetDriverLocation(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestFindNearbySortedByDistance(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	origin := models.Location{Latitude: 28.630, Longitude: 77.220}

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("far", 28.660, 77.250, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("near", 28.625, 77.215, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("mumbai", 19.076, 72.877, true)))

	nearby, err := repo.FindNearby(ctx, origin, 5, true)
	require.NoError(t, err)

	require.Len(t, nearby, 2)
	assert.Equal(t, "near", nearby[0].DriverID)
	assert.Equal(t, "far", nearby[1].DriverID)
	assert.Less(t, nearby[0].DistanceKm, nearby[1].DistanceKm)

	// Known scenario: ~0.62 km between these two Delhi points
	assert.InDelta(t, 0.62, nearby[0].DistanceKm, 0.05)
}

func TestFindNearbyTieBreakByDriverID(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	origin := models.Location{Latitude: 28.630, Longitude: 77.220}

	// Same coordinates, so identical distance
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("beta", 28.625, 77.215, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("alpha", 28.625, 77.215, true)))

	nearby, err := repo.FindNearby(ctx, origin, 5, true)
	require.NoError(t, err)

	require.Len(t, nearby, 2)
	assert.Equal(t, "alpha", nearby[0].DriverID)
	assert.Equal(t, "beta", nearby[1].DriverID)
	assert.Equal(t, nearby[0].DistanceKm, nearby[1].DistanceKm)
}

func TestFindNearbyExcludesOffline(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	origin := models.Location{Latitude: 28.630, Longitude: 77.220}

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("online", 28.625, 77.215, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("offline", 28.626, 77.216, false)))

	nearby, err := repo.FindNearby(ctx, origin, 5, true)
	require.NoError(t, err)

	require.Len(t, nearby, 1)
	assert.Equal(t, "online", nearby[0].DriverID)

	// With online filtering disabled both drivers appear
	all, err := repo.FindNearby(ctx, origin, 5, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindNearbyEmptyResult(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("mumbai", 19.076, 72.877, true)))

	nearby, err := repo.FindNearby(ctx, models.Location{Latitude: 28.630, Longitude: 77.220}, 5, true)
	require.NoError(t, err)

	assert.NotNil(t, nearby)
	assert.Empty(t, nearby)
}

func TestFindNearbySkipsDriverRemovedBetweenReads(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	origin := models.Location{Latitude: 28.630, Longitude: 77.220}

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("kept", 28.625, 77.215, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("gone", 28.626, 77.216, true)))

	// Drop the hash but leave the geo entry, as a concurrent removal would
	// between the radius query and the per-driver read
	mr.Del("driver:location:gone")

	nearby, err := repo.FindNearby(ctx, origin, 5, true)
	require.NoError(t, err)

	require.Len(t, nearby, 1)
	assert.Equal(t, "kept", nearby[0].DriverID)
}

func TestFindNearbySurfacesLocationReadErrors(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	origin := models.Location{Latitude: 28.630, Longitude: 77.220}

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("bad", 28.625, 77.215, true)))

	// Overwrite the location hash with a plain string so HGETALL fails with
	// a wrong-type error rather than an empty result
	mr.Del("driver:location:bad")
	require.NoError(t, mr.Set("driver:location:bad", "junk"))

	_, err := repo.FindNearby(ctx, origin, 5, true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRemoveDriver(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("d1", 28.625, 77.215, true)))
	require.NoError(t, repo.RemoveDriver(ctx, "d1"))

	assert.False(t, mr.Exists("driver:location:d1"))

	_, err := repo.GetDriverLocation(ctx, "d1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	online, err := repo.IsOnline(ctx, "d1")
	require.NoError(t, err)
	assert.False(t, online)

	// Removing again is a no-op
	assert.NoError(t, repo.RemoveDriver(ctx, "d1"))
}

func TestCountOnline(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	count, err := repo.CountOnline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, repo.UpsertLocation(ctx, driverAt("d1", 28.625, 77.215, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("d2", 28.626, 77.216, true)))
	require.NoError(t, repo.UpsertLocation(ctx, driverAt("d3", 28.627, 77.217, false)))

	count, err = repo.CountOnline(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
