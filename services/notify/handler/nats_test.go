package handler

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickshawlabs/dispatch/internal/pkg/constants"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/services/notify"
)

type published struct {
	subjectID string
	snap      notify.Snapshot
}

type recordingRelay struct {
	events []published
}

func (r *recordingRelay) Subscribe(subjectID string, filter notify.Filter) notify.Subscription {
	return nil
}

func (r *recordingRelay) Publish(subjectID string, snap notify.Snapshot) {
	r.events = append(r.events, published{subjectID: subjectID, snap: snap})
}

func TestHandleRideEventNotifiesBothParties(t *testing.T) {
	relay := &recordingRelay{}
	h := NewNatsHandler(nil, relay)

	req := models.RideRequest{
		ID:       uuid.New(),
		RiderID:  "rider-1",
		DriverID: "driver-1",
		Status:   models.RideStatusAccepted,
	}
	msg, err := json.Marshal(req)
	require.NoError(t, err)

	require.NoError(t, h.handleRideEvent(constants.EventRideAccepted, msg))
	require.Len(t, relay.events, 2)

	assert.Equal(t, "rider-1", relay.events[0].subjectID)
	assert.Equal(t, "driver-1", relay.events[1].subjectID)
	for _, e := range relay.events {
		assert.Equal(t, constants.EventRideAccepted, e.snap.Kind)
		assert.Equal(t, req.ID.String(), e.snap.RecordID)
		assert.JSONEq(t, string(msg), string(e.snap.Payload))
	}
}

func TestHandleRideEventBadPayload(t *testing.T) {
	relay := &recordingRelay{}
	h := NewNatsHandler(nil, relay)

	err := h.handleRideEvent(constants.EventRideAccepted, []byte("not json"))
	assert.Error(t, err)
	assert.Empty(t, relay.events)
}

func TestHandleRideCompletedEventKeyedByRequest(t *testing.T) {
	relay := &recordingRelay{}
	h := NewNatsHandler(nil, relay)

	ride := models.CompletedRide{
		ID:        uuid.New(),
		RequestID: uuid.New(),
		RiderID:   "rider-1",
		DriverID:  "driver-1",
		Fare:      30,
	}
	msg, err := json.Marshal(ride)
	require.NoError(t, err)

	require.NoError(t, h.handleRideCompletedEvent(msg))
	require.Len(t, relay.events, 2)
	assert.Equal(t, ride.RequestID.String(), relay.events[0].snap.RecordID)
	assert.Equal(t, constants.EventRideCompleted, relay.events[0].snap.Kind)
}

func TestHandleLocationEventKeyedByDriver(t *testing.T) {
	relay := &recordingRelay{}
	h := NewNatsHandler(nil, relay)

	update := models.LocationUpdate{
		DriverID: "driver-1",
		Location: models.Location{Latitude: 28.625, Longitude: 77.215},
		Online:   true,
	}
	msg, err := json.Marshal(update)
	require.NoError(t, err)

	require.NoError(t, h.handleLocationEvent(msg))
	require.Len(t, relay.events, 1)
	assert.Equal(t, "driver-1", relay.events[0].subjectID)
	assert.Equal(t, "driver-1", relay.events[0].snap.RecordID)
	assert.Equal(t, constants.EventLocationUpdate, relay.events[0].snap.Kind)
}
