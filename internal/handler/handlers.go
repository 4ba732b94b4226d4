// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It binds requests, handles input validation through the
// qr and validation packages, and calls the appropriate
// service. It acts as the interface between the HTTP request
// and the core logic.
package handler

import (
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/deppfellow/qrgen/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// passes one object around instead of many.
type Handlers struct {
	Health *HealthHandler // Health serves the liveness endpoint.
	QR     *QRHandler     // QR renders QR codes from query strings and JSON bodies.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health: NewHealthHandler(s),
		QR:     NewQRHandler(s, services.QR),
	}
}
