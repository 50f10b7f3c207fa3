package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/internal/utils"
	"github.com/rickshawlabs/dispatch/services/rides"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride HTTP handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
	}
}

type createRideRequest struct {
	RiderID   string  `json:"rider_id"`
	RiderName string  `json:"rider_name"`
	DriverID  string  `json:"driver_id"`
	PickupLat float64 `json:"pickup_lat"`
	PickupLng float64 `json:"pickup_lng"`
	DropLat   float64 `json:"drop_lat"`
	DropLng   float64 `json:"drop_lng"`
}

type acceptRideRequest struct {
	DriverID   string `json:"driver_id"`
	DriverName string `json:"driver_name"`
}

type rejectRideRequest struct {
	DriverID string `json:"driver_id"`
}

type cancelRideRequest struct {
	RiderID string `json:"rider_id"`
}

// CreateRequest handles a rider requesting a specific driver
func (h *RideHandler) CreateRequest(c echo.Context) error {
	var req createRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RiderID == "" || req.DriverID == "" {
		return utils.BadRequestResponse(c, "rider_id and driver_id are required")
	}

	input := &models.RideRequestInput{
		RiderID:   req.RiderID,
		RiderName: req.RiderName,
		DriverID:  req.DriverID,
		Pickup:    models.Location{Latitude: req.PickupLat, Longitude: req.PickupLng},
		Drop:      models.Location{Latitude: req.DropLat, Longitude: req.DropLng},
	}

	ride, err := h.rideUC.CreateRequest(c.Request().Context(), input)
	if err != nil {
		logger.Warn("Failed to create ride request",
			logger.String("rider_id", req.RiderID),
			logger.String("driver_id", req.DriverID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride request created", ride)
}

// Accept handles the assigned driver accepting a pending request
func (h *RideHandler) Accept(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var req acceptRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	ride, err := h.rideUC.Accept(c.Request().Context(), requestID, req.DriverID, req.DriverName)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride accepted", ride)
}

// Reject handles the assigned driver declining a pending request
func (h *RideHandler) Reject(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var req rejectRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.DriverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	ride, err := h.rideUC.Reject(c.Request().Context(), requestID, req.DriverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride rejected", ride)
}

// Cancel handles the requesting rider withdrawing a pending request
func (h *RideHandler) Cancel(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	var req cancelRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}
	if req.RiderID == "" {
		return utils.BadRequestResponse(c, "rider_id is required")
	}

	ride, err := h.rideUC.Cancel(c.Request().Context(), requestID, req.RiderID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled", ride)
}

// GetRequest returns a single ride request
func (h *RideHandler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("requestID"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	ride, err := h.rideUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request", ride)
}

// GetIncoming returns the pending requests waiting on a driver
func (h *RideHandler) GetIncoming(c echo.Context) error {
	driverID := c.QueryParam("driver_id")
	if driverID == "" {
		return utils.BadRequestResponse(c, "driver_id is required")
	}

	requests, err := h.rideUC.GetIncoming(c.Request().Context(), driverID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Incoming requests", requests)
}

// ListRides returns ride history for a rider or a driver
func (h *RideHandler) ListRides(c echo.Context) error {
	riderID := c.QueryParam("rider_id")
	driverID := c.QueryParam("driver_id")

	ctx := c.Request().Context()
	switch {
	case riderID != "":
		requests, err := h.rideUC.ListByRider(ctx, riderID)
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Rider rides", requests)
	case driverID != "":
		requests, err := h.rideUC.ListByDriver(ctx, driverID)
		if err != nil {
			return utils.DomainErrorResponse(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Driver rides", requests)
	default:
		return utils.BadRequestResponse(c, "rider_id or driver_id is required")
	}
}

// GetAdminStats returns platform-wide ride and commission aggregates
func (h *RideHandler) GetAdminStats(c echo.Context) error {
	stats, err := h.rideUC.GetAdminStats(c.Request().Context())
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Admin stats", stats)
}
