package router // package router defines how HTTP routes are registered

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/no-pressure/internal/handler"
)

// RegisterRoutes wires the dashboard pages, the JSON readings API and the
// health check.  submitLimit is applied only to the submission route because
// every submission triggers a guidance call against the remote model; pass
// a pass-through middleware when rate limiting is disabled.
func RegisterRoutes(e *echo.Echo, h *handler.ReadingHandler, submitLimit echo.MiddlewareFunc) {
	// Health check for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Dashboard page and form submission.
	e.GET("/", h.Dashboard)
	e.POST("/readings", h.Submit, submitLimit)

	// Read-only JSON surface over the same repository.
	v1 := e.Group("/v1")
	v1.GET("/readings", h.ListReadings)
	v1.GET("/readings/latest", h.LatestReading)
}
