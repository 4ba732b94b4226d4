package handler

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/deppfellow/qrgen/internal/errs"
	"github.com/deppfellow/qrgen/internal/qr"
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/deppfellow/qrgen/internal/service"
	"github.com/deppfellow/qrgen/internal/validation"
	"github.com/labstack/echo/v4"
)

// MIMEImageSVG is the content type of every rendered QR code.
const MIMEImageSVG = "image/svg+xml"

// QRHandler renders QR codes.
type QRHandler struct {
	Handler
	qrService *service.QRService
}

// NewQRHandler constructs a QRHandler.
func NewQRHandler(s *server.Server, qrService *service.QRService) *QRHandler {
	return &QRHandler{
		Handler:   NewHandler(s),
		qrService: qrService,
	}
}

// Render encodes an already validated request. Shared by GET and POST; only
// the binder and the success status differ.
func (h *QRHandler) Render(c echo.Context, req qr.EncodeRequest) ([]byte, error) {
	return h.qrService.Render(c.Request().Context(), req)
}

// BindQuery reads text and size from the query string.
func BindQuery(c echo.Context) (qr.EncodeRequest, error) {
	req, err := qr.Parse(qr.InputFromQuery(c.QueryParams()))
	if err != nil {
		return qr.EncodeRequest{}, validation.HTTPError(err)
	}
	return req, nil
}

// BindJSON reads text and size from a JSON object body.
//
// An empty body reads as {} and so fails validation on text. A body that is
// not valid JSON, or valid JSON that is not an object, is a malformed-body
// error. Errors from reading the body (e.g. over the size limit) are
// returned unchanged.
func BindJSON(c echo.Context) (qr.EncodeRequest, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return qr.EncodeRequest{}, err
	}

	in, err := decodeObject(body)
	if err != nil {
		return qr.EncodeRequest{}, err
	}

	req, err := qr.Parse(in)
	if err != nil {
		return qr.EncodeRequest{}, validation.HTTPError(err)
	}
	return req, nil
}

// decodeObject decodes exactly one JSON object, keeping numbers as
// json.Number so integral checks see the literal the client sent.
func decodeObject(body []byte) (qr.Input, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return qr.Input{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errs.NewMalformedBodyError("body must be valid JSON")
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, errs.NewMalformedBodyError("body must contain a single JSON value")
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, errs.NewMalformedBodyError("body must be a JSON object")
	}

	return qr.Input(obj), nil
}
