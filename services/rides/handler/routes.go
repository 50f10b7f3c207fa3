package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/rickshawlabs/dispatch/services/rides"
	httphandler "github.com/rickshawlabs/dispatch/services/rides/handler/http"
)

// Handler combines the transport handlers for the rides service
type Handler struct {
	httpHandler *httphandler.RideHandler
}

// NewHandler creates a new rides handler
func NewHandler(rideUC rides.RideUC) *Handler {
	return &Handler{
		httpHandler: httphandler.NewRideHandler(rideUC),
	}
}

// RegisterRoutes registers the rides service HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/rides")
	group.POST("", h.httpHandler.CreateRequest)
	group.GET("", h.httpHandler.ListRides)
	group.GET("/incoming", h.httpHandler.GetIncoming)
	group.GET("/:requestID", h.httpHandler.GetRequest)
	group.POST("/:requestID/accept", h.httpHandler.Accept)
	group.POST("/:requestID/reject", h.httpHandler.Reject)
	group.POST("/:requestID/cancel", h.httpHandler.Cancel)

	e.GET("/admin/stats", h.httpHandler.GetAdminStats)
}
