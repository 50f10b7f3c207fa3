package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rickshawlabs/dispatch/internal/pkg/constants"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	natspkg "github.com/rickshawlabs/dispatch/internal/pkg/nats"
	"github.com/rickshawlabs/dispatch/services/rides"
)

type rideGW struct {
	natsClient *natspkg.Client
}

// NewRideGW creates a new ride gateway
func NewRideGW(natsClient *natspkg.Client) rides.RideGW {
	return &rideGW{
		natsClient: natsClient,
	}
}

func (g *rideGW) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}
	return g.natsClient.Publish(subject, data)
}

// PublishRideRequested publishes a new pending ride request event
func (g *rideGW) PublishRideRequested(ctx context.Context, req *models.RideRequest) error {
	return g.publish(constants.SubjectRideRequested, req)
}

// PublishRideAccepted publishes a ride accepted event
func (g *rideGW) PublishRideAccepted(ctx context.Context, req *models.RideRequest) error {
	return g.publish(constants.SubjectRideAccepted, req)
}

// PublishRideRejected publishes a ride rejected event
func (g *rideGW) PublishRideRejected(ctx context.Context, req *models.RideRequest) error {
	return g.publish(constants.SubjectRideRejected, req)
}

// PublishRideCancelled publishes a ride cancelled event
func (g *rideGW) PublishRideCancelled(ctx context.Context, req *models.RideRequest) error {
	return g.publish(constants.SubjectRideCancelled, req)
}

// PublishRideCompleted publishes the settled ride record
func (g *rideGW) PublishRideCompleted(ctx context.Context, ride *models.CompletedRide) error {
	return g.publish(constants.SubjectRideCompleted, ride)
}
