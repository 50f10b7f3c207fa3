package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
	"github.com/rickshawlabs/dispatch/internal/pkg/models"
	"github.com/rickshawlabs/dispatch/internal/utils"
	"github.com/rickshawlabs/dispatch/services/geo"
)

// GeoHandler handles HTTP requests for driver location operations
type GeoHandler struct {
	geoUC geo.GeoUC
}

// NewGeoHandler creates a new geo HTTP handler
func NewGeoHandler(geoUC geo.GeoUC) *GeoHandler {
	return &GeoHandler{
		geoUC: geoUC,
	}
}

type locationUpdateRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Online    bool    `json:"online"`
}

// UpdateLocation handles a driver location report
func (h *GeoHandler) UpdateLocation(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	var req locationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	loc := models.Location{Latitude: req.Latitude, Longitude: req.Longitude}
	driver, err := h.geoUC.UpdateLocation(c.Request().Context(), driverID, loc, req.Online)
	if err != nil {
		logger.Warn("Failed to update driver location",
			logger.String("driver_id", driverID),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location updated", driver)
}

// FindNearby handles nearby driver discovery
func (h *GeoHandler) FindNearby(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "latitude is required")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "longitude is required")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius_km")
		}
	}

	includeOffline := c.QueryParam("include_offline") == "true"

	origin := models.Location{Latitude: lat, Longitude: lng}
	nearby, err := h.geoUC.FindNearby(c.Request().Context(), origin, radiusKm, !includeOffline)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby drivers", nearby)
}

// RemoveDriver handles driver removal from the location index
func (h *GeoHandler) RemoveDriver(c echo.Context) error {
	driverID := c.Param("driverID")
	if driverID == "" {
		return utils.BadRequestResponse(c, "Driver ID is required")
	}

	if err := h.geoUC.RemoveDriver(c.Request().Context(), driverID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver removed", nil)
}
