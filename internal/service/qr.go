package service

import (
	"context"

	"github.com/deppfellow/qrgen/internal/errs"
	"github.com/deppfellow/qrgen/internal/qr"
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// QRService renders validated requests to SVG.
type QRService struct {
	server  *server.Server
	encoder qr.Encoder
}

// NewQRService constructs a QRService.
func NewQRService(s *server.Server, encoder qr.Encoder) *QRService {
	return &QRService{
		server:  s,
		encoder: encoder,
	}
}

// Render encodes req at its effective width (Size, or DefaultSize when absent).
//
// Text the encoder cannot fit into a symbol is the caller's fault and comes
// back as a 400 *errs.HTTPError; any other encoder failure is returned
// wrapped and ends up as a 500.
func (s *QRService) Render(ctx context.Context, req qr.EncodeRequest) ([]byte, error) {
	logger := zerolog.Ctx(ctx)
	width := req.Width()

	if txn := newrelic.FromContext(ctx); txn != nil {
		txn.AddAttribute("qr.width", width)
		txn.AddAttribute("qr.text_bytes", len(req.Text))
		defer txn.StartSegment("qr.encode").End()
	}

	svg, err := s.encoder.Encode(req.Text, width)
	if err != nil {
		if errors.Is(err, qr.ErrUnencodable) {
			logger.Warn().
				Err(err).
				Int("width", width).
				Int("text_bytes", len(req.Text)).
				Msg("text does not fit in a QR symbol")

			return nil, errs.NewEncodingError(qr.FieldText)
		}

		return nil, errors.Wrap(err, "failed to render QR code")
	}

	logger.Debug().
		Int("width", width).
		Bool("default_width", req.Size == nil).
		Int("svg_bytes", len(svg)).
		Msg("rendered QR code")

	return svg, nil
}
