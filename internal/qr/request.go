// Package qr turns text into QR code SVG markup.
//
// It holds the request contract (EncodeRequest and the Parse validator that
// produces it from untyped input) and the SVG encoder built on
// github.com/skip2/go-qrcode.
package qr

import (
	"encoding/json"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/deppfellow/qrgen/internal/validation"
)

// Field names as they appear in query strings and JSON bodies.
const (
	FieldText = "text"
	FieldSize = "size"
)

// Request limits. Text length is counted in Unicode code points.
const (
	MaxTextLength = 500
	MinSize       = 128
	MaxSize       = 1024
	DefaultSize   = 256
)

// EncodeRequest is a validated request to render Text as a QR code.
//
// Size is nil when the caller did not send one; Width applies the default.
type EncodeRequest struct {
	Text string `json:"text" validate:"required,max=500"`
	Size *int   `json:"size,omitempty" validate:"omitnil,min=128,max=1024"`
}

// Validate runs the struct-tag rules.
func (r EncodeRequest) Validate() error {
	return validation.Struct(r)
}

// Width is the rendered SVG width and height in pixels.
func (r EncodeRequest) Width() int {
	if r.Size == nil {
		return DefaultSize
	}
	return *r.Size
}

// Input is the untyped key/value bag a request arrives as, before validation.
// Values are whatever the transport produced: strings and float64 from query
// strings, string/json.Number/bool/nil/maps/slices from JSON.
type Input map[string]any

// InputFromQuery reads text and size from query parameters.
//
// A missing text stays missing. A size that is absent or empty is left out;
// otherwise it is coerced to a number the way a browser would read it
// (surrounding spaces ignored, "300.0" is 300). A size that does not parse
// as a number is kept as the raw string so Parse reports it.
func InputFromQuery(q url.Values) Input {
	in := Input{}

	if q.Has(FieldText) {
		in[FieldText] = q.Get(FieldText)
	}

	if raw := q.Get(FieldSize); raw != "" {
		if n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
			in[FieldSize] = n
		} else {
			in[FieldSize] = raw
		}
	}

	return in
}

// Parse validates in and returns the normalized request.
//
// Every violated field is reported, grouped by field, in a
// validation.CustomValidationErrors; a bad size never hides a bad text and
// vice versa. Unknown keys are ignored.
func Parse(in Input) (EncodeRequest, error) {
	var (
		req   EncodeRequest
		found validation.CustomValidationErrors
	)

	switch v := in[FieldText].(type) {
	case nil:
		// left empty; the required rule reports it
	case string:
		req.Text = v
	default:
		found.Add(FieldText, "must be a string")
	}

	if raw, ok := in[FieldSize]; ok && raw != nil {
		if n, ok := asInteger(raw); ok {
			req.Size = &n
		} else {
			found.Add(FieldSize, "must be an integer")
		}
	}

	if err := validation.Check(found, req); err != nil {
		return EncodeRequest{}, err
	}

	return req, nil
}

// asInteger accepts integral numbers only. Values far outside any valid size
// are clamped so the range rule still reports them correctly.
func asInteger(v any) (int, bool) {
	var f float64

	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		f = float64(n)
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}

	switch {
	case f > math.MaxInt32:
		return math.MaxInt32, true
	case f < math.MinInt32:
		return math.MinInt32, true
	}
	return int(f), true
}
