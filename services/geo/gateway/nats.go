package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rickshawlabs/dispatch/internal/pkg/constants"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	natspkg "github.com/rickshawlabs/dispatch/internal/pkg/nats"
	"github.com/rickshawlabs/dispatch/services/geo"
)

type geoGW struct {
	natsClient *natspkg.Client
}

// NewGeoGW creates a new geo gateway
func NewGeoGW(natsClient *natspkg.Client) geo.GeoGW {
	return &geoGW{
		natsClient: natsClient,
	}
}

// PublishLocationUpdate publishes a driver location change event
func (g *geoGW) PublishLocationUpdate(ctx context.Context, update *models.LocationUpdate) error {
	data, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal location update: %w", err)
	}

	return g.natsClient.Publish(constants.SubjectLocationUpdate, data)
}
