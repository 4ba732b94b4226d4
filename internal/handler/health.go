package handler

import (
	"github.com/deppfellow/qrgen/internal/config"
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler exposes a "system" endpoint that uptime monitors and load
// balancers use to verify the service is alive.
//
// The service has no dependencies to probe, so the answer is always the same.
type HealthHandler struct {
	Handler
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
}

// NewHealthHandler constructs a HealthHandler with access to shared app dependencies.
func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth always reports the service as up.
func (h *HealthHandler) CheckHealth(c echo.Context, _ struct{}) (HealthResponse, error) {
	return HealthResponse{
		OK:      true,
		Service: config.ServiceName,
	}, nil
}
