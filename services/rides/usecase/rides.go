package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rickshawlabs/dispatch/internal/pkg/apperrors"
	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/internal/utils"
	"github.com/rickshawlabs/dispatch/services/rides"
)

var _ rides.RideUC = (*RideUC)(nil)

// CreateRequest validates and persists a new ride request targeted at a
// specific driver. Distance and fare are computed here, once, and never
// change afterwards regardless of driver movement.
func (uc *RideUC) CreateRequest(ctx context.Context, input *models.RideRequestInput) (*models.RideRequest, error) {
	if !input.Pickup.Valid() {
		return nil, fmt.Errorf("pickup lat=%f lng=%f: %w",
			input.Pickup.Latitude, input.Pickup.Longitude, apperrors.ErrInvalidCoordinate)
	}
	if !input.Drop.Valid() {
		return nil, fmt.Errorf("drop lat=%f lng=%f: %w",
			input.Drop.Latitude, input.Drop.Longitude, apperrors.ErrInvalidCoordinate)
	}

	online, err := uc.drivers.IsOnline(ctx, input.DriverID)
	if err != nil {
		return nil, err
	}
	if !online {
		return nil, fmt.Errorf("driver %s: %w", input.DriverID, apperrors.ErrDriverUnavailable)
	}

	distanceKm := utils.CalculateDistance(input.Pickup, input.Drop)
	now := models.Now()

	req := &models.RideRequest{
		ID:           uuid.New(),
		RiderID:      input.RiderID,
		RiderName:    input.RiderName,
		DriverID:     input.DriverID,
		PickupLat:    input.Pickup.Latitude,
		PickupLng:    input.Pickup.Longitude,
		DropLat:      input.Drop.Latitude,
		DropLng:      input.Drop.Longitude,
		DistanceKm:   distanceKm,
		FareEstimate: utils.CalculateFare(distanceKm, uc.cfg.Pricing),
		Status:       models.RideStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.rideRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	if err := uc.rideGW.PublishRideRequested(ctx, req); err != nil {
		logger.Warn("Failed to publish ride requested event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	logger.Info("Ride request created",
		logger.String("request_id", req.ID.String()),
		logger.String("rider_id", req.RiderID),
		logger.String("driver_id", req.DriverID),
		logger.Float64("distance_km", req.DistanceKm),
		logger.Float64("fare_estimate", req.FareEstimate))

	return req, nil
}

// Accept lets the assigned driver take a pending request. The accepted ride
// is settled immediately and atomically: one transaction writes the
// completed ride record with the frozen fare and the flat commission and
// moves the request on to completed.
func (uc *RideUC) Accept(ctx context.Context, requestID uuid.UUID, driverID, driverName string) (*models.RideRequest, error) {
	req, err := uc.rideRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.DriverID != driverID {
		return nil, fmt.Errorf("driver %s is not assigned to request %s: %w",
			driverID, requestID, apperrors.ErrUnauthorized)
	}
	if !models.CanTransition(req.Status, models.RideStatusAccepted) {
		return nil, fmt.Errorf("ride request %s is %s: %w",
			requestID, req.Status, apperrors.ErrInvalidTransition)
	}

	ride := &models.CompletedRide{
		ID:          uuid.New(),
		RequestID:   req.ID,
		RiderID:     req.RiderID,
		DriverID:    req.DriverID,
		PickupLat:   req.PickupLat,
		PickupLng:   req.PickupLng,
		DropLat:     req.DropLat,
		DropLng:     req.DropLng,
		DistanceKm:  req.DistanceKm,
		Fare:        req.FareEstimate,
		Commission:  uc.cfg.Pricing.CommissionPerRide,
		CompletedAt: models.Now(),
	}
	if err := uc.rideRepo.SettleRequest(ctx, requestID, driverName, ride); err != nil {
		return nil, err
	}
	req.DriverName = driverName

	req.Status = models.RideStatusAccepted
	if err := uc.rideGW.PublishRideAccepted(ctx, req); err != nil {
		logger.Warn("Failed to publish ride accepted event",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}

	req.Status = models.RideStatusCompleted
	if err := uc.rideGW.PublishRideCompleted(ctx, ride); err != nil {
		logger.Warn("Failed to publish ride completed event",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}

	logger.Info("Ride accepted and settled",
		logger.String("request_id", req.ID.String()),
		logger.String("driver_id", driverID),
		logger.Float64("fare", ride.Fare),
		logger.Float64("commission", ride.Commission))

	return req, nil
}

// Reject lets the assigned driver decline a pending request
func (uc *RideUC) Reject(ctx context.Context, requestID uuid.UUID, driverID string) (*models.RideRequest, error) {
	req, err := uc.rideRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.DriverID != driverID {
		return nil, fmt.Errorf("driver %s is not assigned to request %s: %w",
			driverID, requestID, apperrors.ErrUnauthorized)
	}
	if !models.CanTransition(req.Status, models.RideStatusRejected) {
		return nil, fmt.Errorf("ride request %s is %s: %w",
			requestID, req.Status, apperrors.ErrInvalidTransition)
	}

	if err := uc.rideRepo.UpdateStatus(ctx, requestID, models.RideStatusPending, models.RideStatusRejected); err != nil {
		return nil, err
	}
	req.Status = models.RideStatusRejected

	if err := uc.rideGW.PublishRideRejected(ctx, req); err != nil {
		logger.Warn("Failed to publish ride rejected event",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}

	return req, nil
}

// Cancel lets the requesting rider withdraw a pending request
func (uc *RideUC) Cancel(ctx context.Context, requestID uuid.UUID, riderID string) (*models.RideRequest, error) {
	req, err := uc.rideRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RiderID != riderID {
		return nil, fmt.Errorf("rider %s does not own request %s: %w",
			riderID, requestID, apperrors.ErrUnauthorized)
	}
	if !models.CanTransition(req.Status, models.RideStatusCancelled) {
		return nil, fmt.Errorf("ride request %s is %s: %w",
			requestID, req.Status, apperrors.ErrInvalidTransition)
	}

	if err := uc.rideRepo.UpdateStatus(ctx, requestID, models.RideStatusPending, models.RideStatusCancelled); err != nil {
		return nil, err
	}
	req.Status = models.RideStatusCancelled

	if err := uc.rideGW.PublishRideCancelled(ctx, req); err != nil {
		logger.Warn("Failed to publish ride cancelled event",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}

	return req, nil
}

// GetRequest returns a single ride request
func (uc *RideUC) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error) {
	return uc.rideRepo.GetRequest(ctx, requestID)
}

// GetIncoming returns the pending requests waiting on a driver, most recent
// first
func (uc *RideUC) GetIncoming(ctx context.Context, driverID string) ([]*models.RideRequest, error) {
	return uc.rideRepo.ListByDriver(ctx, driverID, models.RideStatusPending)
}

// ListByDriver returns all of a driver's requests, most recent first
func (uc *RideUC) ListByDriver(ctx context.Context, driverID string) ([]*models.RideRequest, error) {
	return uc.rideRepo.ListByDriver(ctx, driverID, "")
}

// ListByRider returns all of a rider's requests, most recent first
func (uc *RideUC) ListByRider(ctx context.Context, riderID string) ([]*models.RideRequest, error) {
	return uc.rideRepo.ListByRider(ctx, riderID)
}

// GetAdminStats combines completed ride aggregates with the live driver
// count
func (uc *RideUC) GetAdminStats(ctx context.Context) (*models.AdminStats, error) {
	stats, err := uc.rideRepo.GetRideStats(ctx)
	if err != nil {
		return nil, err
	}

	activeDrivers, err := uc.drivers.CountOnline(ctx)
	if err != nil {
		return nil, err
	}
	stats.ActiveDrivers = activeDrivers

	return stats, nil
}
