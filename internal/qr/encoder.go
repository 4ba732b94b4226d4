package qr

import (
	"bytes"
	"strconv"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

// Margin is the quiet zone drawn around the symbol, in modules.
const Margin = 1

// ErrUnencodable is returned (wrapped) when the text does not fit in any
// QR symbol at the configured error correction level.
var ErrUnencodable = errors.New("text cannot be encoded as a QR code")

// Encoder renders text as an image of the given width.
type Encoder interface {
	Encode(text string, width int) ([]byte, error)
}

// SVGEncoder renders QR codes as SVG documents.
//
// The zero value is not useful; use NewSVGEncoder. An SVGEncoder holds no
// mutable state and is safe for concurrent use.
type SVGEncoder struct {
	Level  qrcode.RecoveryLevel
	Margin int
}

// NewSVGEncoder returns an encoder with Medium error correction and a
// one-module quiet zone.
func NewSVGEncoder() SVGEncoder {
	return SVGEncoder{
		Level:  qrcode.Medium,
		Margin: Margin,
	}
}

// Encode renders text at width x width pixels.
//
// The output is deterministic: the same text and width always produce the
// same bytes. Modules are drawn in a viewBox measured in modules, so the
// document scales to any width without rounding.
func (e SVGEncoder) Encode(text string, width int) ([]byte, error) {
	code, err := qrcode.New(text, e.Level)
	if err != nil {
		return nil, errors.Wrapf(ErrUnencodable, "%v", err)
	}

	// skip2 draws a 4-module border by default; the margin is added below.
	code.DisableBorder = true
	bitmap := code.Bitmap()
	if len(bitmap) == 0 {
		return nil, errors.Wrap(ErrUnencodable, "empty symbol")
	}

	return renderSVG(bitmap, width, e.Margin), nil
}

// renderSVG writes a white background and one black path made of horizontal
// runs of dark modules, each run a 1-module-wide stroke.
func renderSVG(bitmap [][]bool, width, margin int) []byte {
	size := strconv.Itoa(len(bitmap) + 2*margin)
	w := strconv.Itoa(width)

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="`)
	buf.WriteString(w)
	buf.WriteString(`" height="`)
	buf.WriteString(w)
	buf.WriteString(`" viewBox="0 0 `)
	buf.WriteString(size)
	buf.WriteByte(' ')
	buf.WriteString(size)
	buf.WriteString(`" shape-rendering="crispEdges">`)

	buf.WriteString(`<path fill="#ffffff" d="M0 0h`)
	buf.WriteString(size)
	buf.WriteString(`v`)
	buf.WriteString(size)
	buf.WriteString(`H0z"/>`)

	buf.WriteString(`<path stroke="#000000" d="`)
	first := true
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}

			start := x
			for x < len(row) && row[x] {
				x++
			}

			if !first {
				buf.WriteByte(' ')
			}
			first = false

			buf.WriteByte('M')
			buf.WriteString(strconv.Itoa(start + margin))
			buf.WriteByte(' ')
			buf.WriteString(strconv.Itoa(y + margin))
			buf.WriteString(".5h")
			buf.WriteString(strconv.Itoa(x - start))
		}
	}
	buf.WriteString(`"/></svg>`)
	buf.WriteByte('\n')

	return buf.Bytes()
}
