package usecase

import (
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/services/rides"
)

// RideUC implements the ride use case interface
type RideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	rideGW   rides.RideGW
	drivers  rides.DriverPool
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	rideGW rides.RideGW,
	drivers rides.DriverPool,
) *RideUC {
	return &RideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		rideGW:   rideGW,
		drivers:  drivers,
	}
}
