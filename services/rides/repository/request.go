package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rickshawlabs/dispatch/internal/pkg/apperrors"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/services/rides"
)

type rideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride request repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) rides.RideRepo {
	return &rideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRequest inserts a new pending ride request
func (r *rideRepo) CreateRequest(ctx context.Context, req *models.RideRequest) error {
	query := `
		INSERT INTO ride_requests (
			id, rider_id, rider_name, driver_id, driver_name,
			pickup_lat, pickup_lng, drop_lat, drop_lng,
			distance_km, fare_estimate, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		req.ID,
		req.RiderID,
		req.RiderName,
		req.DriverID,
		req.DriverName,
		req.PickupLat,
		req.PickupLng,
		req.DropLat,
		req.DropLng,
		req.DistanceKm,
		req.FareEstimate,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ride request: %w", err)
	}

	return nil
}

// GetRequest retrieves a ride request by id
func (r *rideRepo) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error) {
	query := `
		SELECT id, rider_id, rider_name, driver_id, driver_name,
			pickup_lat, pickup_lng, drop_lat, drop_lng,
			distance_km, fare_estimate, status, created_at, updated_at
		FROM ride_requests
		WHERE id = $1
	`

	req := &models.RideRequest{}
	if err := r.db.GetContext(ctx, req, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("ride request %s: %w", requestID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}

	return req, nil
}

// SettleRequest performs the whole accept flow in one transaction: the
// guarded pending -> accepted transition (stamping the accepting driver's
// name), the settlement record insert, and the accepted -> completed
// transition. The status guard makes concurrent accept/reject races single
// winner: every other caller sees ErrInvalidTransition. A failure at any
// step rolls the whole settle back, so a request can never be stranded in
// accepted or settled twice.
func (r *rideRepo) SettleRequest(ctx context.Context, requestID uuid.UUID, driverName string, ride *models.CompletedRide) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin settle transaction: %w", err)
	}
	defer tx.Rollback()

	acceptQuery := `
		UPDATE ride_requests
		SET status = $1, driver_name = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4
	`
	result, err := tx.ExecContext(ctx, acceptQuery,
		models.RideStatusAccepted, driverName, requestID, models.RideStatusPending)
	if err != nil {
		return fmt.Errorf("failed to accept ride request: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		var status models.RideStatus
		err := tx.GetContext(ctx, &status, `SELECT status FROM ride_requests WHERE id = $1`, requestID)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("ride request %s: %w", requestID, apperrors.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to get ride request: %w", err)
		}
		return fmt.Errorf("ride request %s is %s: %w", requestID, status, apperrors.ErrInvalidTransition)
	}

	insertQuery := `
		INSERT INTO completed_rides (
			id, request_id, rider_id, driver_id,
			pickup_lat, pickup_lng, drop_lat, drop_lng,
			distance_km, fare, commission, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	if _, err := tx.ExecContext(ctx, insertQuery,
		ride.ID, ride.RequestID, ride.RiderID, ride.DriverID,
		ride.PickupLat, ride.PickupLng, ride.DropLat, ride.DropLng,
		ride.DistanceKm, ride.Fare, ride.Commission, ride.CompletedAt,
	); err != nil {
		return fmt.Errorf("failed to create completed ride: %w", err)
	}

	completeQuery := `
		UPDATE ride_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`
	if _, err := tx.ExecContext(ctx, completeQuery,
		models.RideStatusCompleted, requestID, models.RideStatusAccepted); err != nil {
		return fmt.Errorf("failed to complete ride request: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit settle transaction: %w", err)
	}

	return nil
}

// UpdateStatus performs a guarded status transition
func (r *rideRepo) UpdateStatus(ctx context.Context, requestID uuid.UUID, from, to models.RideStatus) error {
	query := `
		UPDATE ride_requests
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	result, err := r.db.ExecContext(ctx, query, to, requestID, from)
	if err != nil {
		return fmt.Errorf("failed to update ride request status: %w", err)
	}

	return r.checkTransitionOutcome(ctx, result, requestID)
}

// checkTransitionOutcome distinguishes a lost transition race from a missing
// row when a guarded update touched nothing
func (r *rideRepo) checkTransitionOutcome(ctx context.Context, result sql.Result, requestID uuid.UUID) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows > 0 {
		return nil
	}

	if _, err := r.GetRequest(ctx, requestID); err != nil {
		return err
	}

	return fmt.Errorf("ride request %s: %w", requestID, apperrors.ErrInvalidTransition)
}

// ListByDriver returns a driver's requests, most recent first. An empty
// status returns all of them.
func (r *rideRepo) ListByDriver(ctx context.Context, driverID string, status models.RideStatus) ([]*models.RideRequest, error) {
	requests := []*models.RideRequest{}

	if status == "" {
		query := `
			SELECT id, rider_id, rider_name, driver_id, driver_name,
				pickup_lat, pickup_lng, drop_lat, drop_lng,
				distance_km, fare_estimate, status, created_at, updated_at
			FROM ride_requests
			WHERE driver_id = $1
			ORDER BY created_at DESC, id DESC
		`
		if err := r.db.SelectContext(ctx, &requests, query, driverID); err != nil {
			return nil, fmt.Errorf("failed to list ride requests by driver: %w", err)
		}
		return requests, nil
	}

	query := `
		SELECT id, rider_id, rider_name, driver_id, driver_name,
			pickup_lat, pickup_lng, drop_lat, drop_lng,
			distance_km, fare_estimate, status, created_at, updated_at
		FROM ride_requests
		WHERE driver_id = $1 AND status = $2
		ORDER BY created_at DESC, id DESC
	`
	if err := r.db.SelectContext(ctx, &requests, query, driverID, status); err != nil {
		return nil, fmt.Errorf("failed to list ride requests by driver: %w", err)
	}

	return requests, nil
}

// ListByRider returns a rider's requests, most recent first
func (r *rideRepo) ListByRider(ctx context.Context, riderID string) ([]*models.RideRequest, error) {
	query := `
		SELECT id, rider_id, rider_name, driver_id, driver_name,
			pickup_lat, pickup_lng, drop_lat, drop_lng,
			distance_km, fare_estimate, status, created_at, updated_at
		FROM ride_requests
		WHERE rider_id = $1
		ORDER BY created_at DESC, id DESC
	`

	requests := []*models.RideRequest{}
	if err := r.db.SelectContext(ctx, &requests, query, riderID); err != nil {
		return nil, fmt.Errorf("failed to list ride requests by rider: %w", err)
	}

	return requests, nil
}

// GetRideStats aggregates the completed ride figures for the admin summary.
// Active driver counts come from the geo service, not this store.
func (r *rideRepo) GetRideStats(ctx context.Context) (*models.AdminStats, error) {
	query := `
		SELECT COUNT(*) AS total_rides,
			COALESCE(SUM(commission), 0) AS total_commission,
			COUNT(DISTINCT rider_id) AS active_riders
		FROM completed_rides
	`

	stats := &models.AdminStats{}
	if err := r.db.GetContext(ctx, stats, query); err != nil {
		return nil, fmt.Errorf("failed to get ride stats: %w", err)
	}

	return stats, nil
}
