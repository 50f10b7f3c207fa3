package database

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return &RedisClient{Client: client}, mr
}

func TestSetGetDelete(t *testing.T) {
	rc, _ := newTestClient(t)
	ctx := context.Background()

	err := rc.Set(ctx, "key", "value", time.Minute)
	require.NoError(t, err)

	got, err := rc.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, "value", got)

	err = rc.Delete(ctx, "key")
	require.NoError(t, err)

	_, err = rc.Get(ctx, "key")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestGeoAddAndRadius(t *testing.T) {
	rc, _ := newTestClient(t)
	ctx := context.Background()

	// Two drivers near Connaught Place, one in Mumbai
	require.NoError(t, rc.GeoAdd(ctx, "test:geo", 77.2167, 28.6315, "driver-near"))
	require.NoError(t, rc.GeoAdd(ctx, "test:geo", 77.2200, 28.6350, "driver-close"))
	require.NoError(t, rc.GeoAdd(ctx, "test:geo", 72.8777, 19.0760, "driver-far"))

	results, err := rc.GeoRadius(ctx, "test:geo", 77.2167, 28.6315, 5, "km")
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "driver-near", results[0].Name)
	assert.Equal(t, "driver-close", results[1].Name)
}
