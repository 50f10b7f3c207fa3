package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is the header carrying the request correlation ID
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware assigns every request a correlation ID, reusing the
// caller's X-Request-ID when one is supplied
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}

			c.Set("request_id", requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the correlation ID assigned to the request, or ""
// when the middleware did not run
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok {
		return id
	}
	return ""
}
