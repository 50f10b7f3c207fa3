package handler

import (
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/rickshawlabs/dispatch/internal/pkg/constants"
	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	natspkg "github.com/rickshawlabs/dispatch/internal/pkg/nats"
	"github.com/rickshawlabs/dispatch/services/notify"
)

// NatsHandler consumes the ride and location subjects and feeds the
// relay, one snapshot per affected party
type NatsHandler struct {
	natsClient *natspkg.Client
	relay      notify.Relay
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new notify NATS handler
func NewNatsHandler(natsClient *natspkg.Client, relay notify.Relay) *NatsHandler {
	return &NatsHandler{
		natsClient: natsClient,
		relay:      relay,
	}
}

// InitConsumers subscribes to every ride lifecycle subject plus driver
// location updates
func (h *NatsHandler) InitConsumers() error {
	rideSubjects := map[string]string{
		constants.SubjectRideRequested: constants.EventRideRequested,
		constants.SubjectRideAccepted:  constants.EventRideAccepted,
		constants.SubjectRideRejected:  constants.EventRideRejected,
		constants.SubjectRideCancelled: constants.EventRideCancelled,
	}

	for subject, event := range rideSubjects {
		event := event
		sub, err := h.natsClient.Subscribe(subject, func(msg *nats.Msg) {
			if err := h.handleRideEvent(event, msg.Data); err != nil {
				logger.Warn("Failed to handle ride event",
					logger.String("event", event),
					logger.Err(err))
			}
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", subject, err)
		}
		h.subs = append(h.subs, sub)
	}

	completedSub, err := h.natsClient.Subscribe(constants.SubjectRideCompleted, func(msg *nats.Msg) {
		if err := h.handleRideCompletedEvent(msg.Data); err != nil {
			logger.Warn("Failed to handle ride completed event",
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectRideCompleted, err)
	}
	h.subs = append(h.subs, completedSub)

	locationSub, err := h.natsClient.Subscribe(constants.SubjectLocationUpdate, func(msg *nats.Msg) {
		if err := h.handleLocationEvent(msg.Data); err != nil {
			logger.Warn("Failed to handle location event",
				logger.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", constants.SubjectLocationUpdate, err)
	}
	h.subs = append(h.subs, locationSub)

	return nil
}

// Close drains the NATS subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe",
				logger.String("subject", sub.Subject),
				logger.Err(err))
		}
	}
	h.subs = nil
}

// handleRideEvent relays a ride lifecycle event to both parties
func (h *NatsHandler) handleRideEvent(event string, msg []byte) error {
	var req models.RideRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return fmt.Errorf("failed to unmarshal %s event: %w", event, err)
	}

	snap := notify.Snapshot{
		Kind:     event,
		RecordID: req.ID.String(),
		Payload:  json.RawMessage(msg),
	}
	h.relay.Publish(req.RiderID, snap)
	h.relay.Publish(req.DriverID, snap)
	return nil
}

// handleRideCompletedEvent relays the settled ride record to both parties
func (h *NatsHandler) handleRideCompletedEvent(msg []byte) error {
	var ride models.CompletedRide
	if err := json.Unmarshal(msg, &ride); err != nil {
		return fmt.Errorf("failed to unmarshal ride completed event: %w", err)
	}

	snap := notify.Snapshot{
		Kind:     constants.EventRideCompleted,
		RecordID: ride.RequestID.String(),
		Payload:  json.RawMessage(msg),
	}
	h.relay.Publish(ride.RiderID, snap)
	h.relay.Publish(ride.DriverID, snap)
	return nil
}

// handleLocationEvent relays a driver location change to the driver's
// own subscribers
func (h *NatsHandler) handleLocationEvent(msg []byte) error {
	var update models.LocationUpdate
	if err := json.Unmarshal(msg, &update); err != nil {
		return fmt.Errorf("failed to unmarshal location event: %w", err)
	}

	h.relay.Publish(update.DriverID, notify.Snapshot{
		Kind:     constants.EventLocationUpdate,
		RecordID: update.DriverID,
		Payload:  json.RawMessage(msg),
	})
	return nil
}
