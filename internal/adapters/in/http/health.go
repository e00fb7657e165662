package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthProbe reports whether the service can reach its dependencies.
type HealthProbe interface {
	Healthy() bool
}

// NewHealthHandler serves GET /health.
func NewHealthHandler(probe HealthProbe) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !probe.Healthy() {
			return c.String(http.StatusServiceUnavailable, "Unhealthy")
		}
		return c.String(http.StatusOK, "Healthy")
	}
}
