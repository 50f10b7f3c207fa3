package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/rickshawlabs/dispatch/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack
// trace and answers with a plain 500 instead of tearing the worker down
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}

	zapLogger.Error("Panic recovered during request processing",
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", GetRequestID(c)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.Err(err))

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Internal server error",
		})
	}
}
