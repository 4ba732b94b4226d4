package router

import (
	"net/http"

	"github.com/deppfellow/qrgen/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints that are not part of the QR API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	// Liveness for load balancers and uptime monitors.
	r.GET("/health", handler.Handle(h.Health.Handler, handler.NoInput, h.Health.CheckHealth, http.StatusOK))
}
