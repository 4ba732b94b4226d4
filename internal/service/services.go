// Package service contains the business logic.
//
// It sits between the handler layer and the QR encoder. It
// receives validated requests from the handler, applies the
// rendering defaults, and maps encoder failures into errors the
// client can act on
package service

import (
	"github.com/deppfellow/qrgen/internal/qr"
	"github.com/deppfellow/qrgen/internal/server"
)

// Services groups every service the handlers depend on.
type Services struct {
	QR *QRService
}

// NewServices wires the services around encoder.
func NewServices(s *server.Server, encoder qr.Encoder) *Services {
	return &Services{
		QR: NewQRService(s, encoder),
	}
}
