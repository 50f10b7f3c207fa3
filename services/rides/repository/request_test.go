package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickshawlabs/dispatch/internal/pkg/apperrors"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/services/rides"
)

func setupMockDB(t *testing.T) (rides.RideRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewRideRepository(&models.Config{}, db), mock
}

func sampleRequest() *models.RideRequest {
	now := time.Now().UTC()
	return &models.RideRequest{
		ID:           uuid.New(),
		RiderID:      "rider-1",
		RiderName:    "Asha",
		DriverID:     "driver-1",
		PickupLat:    28.630,
		PickupLng:    77.220,
		DropLat:      28.625,
		DropLng:      77.215,
		DistanceKm:   0.62,
		FareEstimate: 30,
		Status:       models.RideStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func requestColumns() []string {
	return []string{
		"id", "rider_id", "rider_name", "driver_id", "driver_name",
		"pickup_lat", "pickup_lng", "drop_lat", "drop_lng",
		"distance_km", "fare_estimate", "status", "created_at", "updated_at",
	}
}

func requestRow(req *models.RideRequest) *sqlmock.Rows {
	return sqlmock.NewRows(requestColumns()).AddRow(
		req.ID, req.RiderID, req.RiderName, req.DriverID, req.DriverName,
		req.PickupLat, req.PickupLng, req.DropLat, req.DropLng,
		req.DistanceKm, req.FareEstimate, req.Status, req.CreatedAt, req.UpdatedAt,
	)
}

func TestCreateRequest(t *testing.T) {
	repo, mock := setupMockDB(t)
	req := sampleRequest()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO ride_requests`)).
		WithArgs(
			req.ID, req.RiderID, req.RiderName, req.DriverID, req.DriverName,
			req.PickupLat, req.PickupLng, req.DropLat, req.DropLng,
			req.DistanceKm, req.FareEstimate, req.Status, req.CreatedAt, req.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateRequest(context.Background(), req)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestNotFound(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, rider_id, rider_name, driver_id, driver_name`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(requestColumns()))

	_, err := repo.GetRequest(context.Background(), id)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func sampleCompletedRide(requestID uuid.UUID) *models.CompletedRide {
	return &models.CompletedRide{
		ID:          uuid.New(),
		RequestID:   requestID,
		RiderID:     "rider-1",
		DriverID:    "driver-1",
		PickupLat:   28.630,
		PickupLng:   77.220,
		DropLat:     28.625,
		DropLng:     77.215,
		DistanceKm:  0.62,
		Fare:        30,
		Commission:  5,
		CompletedAt: time.Now().UTC(),
	}
}

func TestSettleRequestWins(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	ride := sampleCompletedRide(id)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ride_requests`)).
		WithArgs(models.RideStatusAccepted, "Ravi", id, models.RideStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO completed_rides`)).
		WithArgs(
			ride.ID, ride.RequestID, ride.RiderID, ride.DriverID,
			ride.PickupLat, ride.PickupLng, ride.DropLat, ride.DropLng,
			ride.DistanceKm, ride.Fare, ride.Commission, ride.CompletedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ride_requests`)).
		WithArgs(models.RideStatusCompleted, id, models.RideStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.SettleRequest(context.Background(), id, "Ravi", ride)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleRequestLosesRace(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	// Guarded update touches nothing because the row already moved on
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ride_requests`)).
		WithArgs(models.RideStatusAccepted, "Ravi", id, models.RideStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM ride_requests`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(models.RideStatusRejected))
	mock.ExpectRollback()

	err := repo.SettleRequest(context.Background(), id, "Ravi", sampleCompletedRide(id))
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleRequestMissingRow(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ride_requests`)).
		WithArgs(models.RideStatusAccepted, "Ravi", id, models.RideStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT status FROM ride_requests`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	err := repo.SettleRequest(context.Background(), id, "Ravi", sampleCompletedRide(id))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettleRequestRollsBackOnFailedInsert(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()
	ride := sampleCompletedRide(id)

	// The accept succeeds but the settlement insert fails; the whole
	// transaction must roll back so the request is not stranded in accepted.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ride_requests`)).
		WithArgs(models.RideStatusAccepted, "Ravi", id, models.RideStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO completed_rides`)).
		WillReturnError(errors.New("duplicate key value violates unique constraint"))
	mock.ExpectRollback()

	err := repo.SettleRequest(context.Background(), id, "Ravi", ride)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusGuarded(t *testing.T) {
	repo, mock := setupMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE ride_requests`)).
		WithArgs(models.RideStatusCompleted, id, models.RideStatusAccepted).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, models.RideStatusAccepted, models.RideStatusCompleted)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDriverPendingOnly(t *testing.T) {
	repo, mock := setupMockDB(t)
	req := sampleRequest()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE driver_id = $1 AND status = $2`)).
		WithArgs("driver-1", models.RideStatusPending).
		WillReturnRows(requestRow(req))

	requests, err := repo.ListByDriver(context.Background(), "driver-1", models.RideStatusPending)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, req.ID, requests[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByRiderEmpty(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE rider_id = $1`)).
		WithArgs("rider-1").
		WillReturnRows(sqlmock.NewRows(requestColumns()))

	requests, err := repo.ListByRider(context.Background(), "rider-1")
	require.NoError(t, err)
	assert.Empty(t, requests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRideStats(t *testing.T) {
	repo, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"total_rides", "total_commission", "active_riders"}).
		AddRow(3, 15.0, 2)
	mock.ExpectQuery(regexp.QuoteMeta(`FROM completed_rides`)).
		WillReturnRows(rows)

	stats, err := repo.GetRideStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRides)
	assert.Equal(t, 15.0, stats.TotalCommission)
	assert.Equal(t, 2, stats.ActiveRiders)
	assert.NoError(t, mock.ExpectationsWereMet())
}
