package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickshawlabs/dispatch/internal/pkg/apperrors"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/services/rides/mocks"
)

func setupHandler(t *testing.T) (*RideHandler, *mocks.MockRideUC) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockRideUC(ctrl)
	return NewRideHandler(mockUC), mockUC
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func TestCreateRequestHandler(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, input *models.RideRequestInput) (*models.RideRequest, error) {
			assert.Equal(t, "rider-1", input.RiderID)
			assert.Equal(t, "driver-1", input.DriverID)
			assert.Equal(t, 28.630, input.Pickup.Latitude)
			return &models.RideRequest{
				ID:       uuid.New(),
				RiderID:  input.RiderID,
				DriverID: input.DriverID,
				Status:   models.RideStatusPending,
			}, nil
		})

	e := echo.New()
	body := `{"rider_id": "rider-1", "rider_name": "Asha", "driver_id": "driver-1",
		"pickup_lat": 28.630, "pickup_lng": 77.220, "drop_lat": 28.625, "drop_lng": 77.215}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides", body), rec)

	require.NoError(t, h.CreateRequest(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), models.RideStatusPending)
}

func TestCreateRequestHandlerMissingFields(t *testing.T) {
	h, _ := setupHandler(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides", `{"rider_id": "rider-1"}`), rec)

	require.NoError(t, h.CreateRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateRequestHandlerDriverOffline(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrDriverUnavailable)

	e := echo.New()
	body := `{"rider_id": "rider-1", "driver_id": "driver-1",
		"pickup_lat": 28.630, "pickup_lng": 77.220, "drop_lat": 28.625, "drop_lng": 77.215}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides", body), rec)

	require.NoError(t, h.CreateRequest(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptHandler(t *testing.T) {
	h, mockUC := setupHandler(t)
	id := uuid.New()

	mockUC.EXPECT().
		Accept(gomock.Any(), id, "driver-1", "Ravi").
		Return(&models.RideRequest{ID: id, Status: models.RideStatusCompleted}, nil)

	e := echo.New()
	body := `{"driver_id": "driver-1", "driver_name": "Ravi"}`
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides/"+id.String()+"/accept", body), rec)
	c.SetParamNames("requestID")
	c.SetParamValues(id.String())

	require.NoError(t, h.Accept(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.RideStatusCompleted)
}

func TestAcceptHandlerWrongDriver(t *testing.T) {
	h, mockUC := setupHandler(t)
	id := uuid.New()

	mockUC.EXPECT().
		Accept(gomock.Any(), id, "driver-2", "").
		Return(nil, apperrors.ErrUnauthorized)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides/"+id.String()+"/accept", `{"driver_id": "driver-2"}`), rec)
	c.SetParamNames("requestID")
	c.SetParamValues(id.String())

	require.NoError(t, h.Accept(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAcceptHandlerLostRace(t *testing.T) {
	h, mockUC := setupHandler(t)
	id := uuid.New()

	mockUC.EXPECT().
		Accept(gomock.Any(), id, "driver-1", "Ravi").
		Return(nil, apperrors.ErrInvalidTransition)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides/"+id.String()+"/accept", `{"driver_id": "driver-1", "driver_name": "Ravi"}`), rec)
	c.SetParamNames("requestID")
	c.SetParamValues(id.String())

	require.NoError(t, h.Accept(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAcceptHandlerBadID(t *testing.T) {
	h, _ := setupHandler(t)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides/not-a-uuid/accept", `{"driver_id": "driver-1"}`), rec)
	c.SetParamNames("requestID")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Accept(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelHandler(t *testing.T) {
	h, mockUC := setupHandler(t)
	id := uuid.New()

	mockUC.EXPECT().
		Cancel(gomock.Any(), id, "rider-1").
		Return(&models.RideRequest{ID: id, Status: models.RideStatusCancelled}, nil)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(jsonRequest(http.MethodPost, "/rides/"+id.String()+"/cancel", `{"rider_id": "rider-1"}`), rec)
	c.SetParamNames("requestID")
	c.SetParamValues(id.String())

	require.NoError(t, h.Cancel(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), models.RideStatusCancelled)
}

func TestGetRequestHandlerNotFound(t *testing.T) {
	h, mockUC := setupHandler(t)
	id := uuid.New()

	mockUC.EXPECT().
		GetRequest(gomock.Any(), id).
		Return(nil, apperrors.ErrNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides/"+id.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("requestID")
	c.SetParamValues(id.String())

	require.NoError(t, h.GetRequest(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetIncomingHandler(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GetIncoming(gomock.Any(), "driver-1").
		Return([]*models.RideRequest{{ID: uuid.New(), DriverID: "driver-1", Status: models.RideStatusPending}}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides/incoming?driver_id=driver-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetIncoming(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "driver-1")
}

func TestListRidesHandlerRequiresParty(t *testing.T) {
	h, _ := setupHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListRides(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListRidesHandlerByRider(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		ListByRider(gomock.Any(), "rider-1").
		Return([]*models.RideRequest{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides?rider_id=rider-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListRides(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAdminStatsHandler(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		GetAdminStats(gomock.Any()).
		Return(&models.AdminStats{TotalRides: 3, TotalCommission: 15, ActiveDrivers: 4, ActiveRiders: 2}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.GetAdminStats(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "total_rides")
}
