package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rickshawlabs/dispatch/services/geo"
	httphandler "github.com/rickshawlabs/dispatch/services/geo/handler/http"
)

// Handler combines the transport handlers for the geo service
type Handler struct {
	httpHandler *httphandler.GeoHandler
}

// NewHandler creates a new geo handler
func NewHandler(geoUC geo.GeoUC) *Handler {
	return &Handler{
		httpHandler: httphandler.NewGeoHandler(geoUC),
	}
}

// RegisterRoutes registers the geo service HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	drivers := e.Group("/drivers")
	drivers.POST("/:driverID/location", h.httpHandler.UpdateLocation)
	drivers.DELETE("/:driverID", h.httpHandler.RemoveDriver)
	drivers.GET("/nearby", h.httpHandler.FindNearby)
}
