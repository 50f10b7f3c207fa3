package usecase

import (
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/services/geo"
)

// GeoUC implements the geo use case interface
type GeoUC struct {
	cfg     *models.Config
	geoRepo geo.GeoRepo
	geoGW   geo.GeoGW
}

// NewGeoUC creates a new geo use case
func NewGeoUC(
	cfg *models.Config,
	geoRepo geo.GeoRepo,
	geoGW geo.GeoGW,
) *GeoUC {
	return &GeoUC{
		cfg:     cfg,
		geoRepo: geoRepo,
		geoGW:   geoGW,
	}
}
