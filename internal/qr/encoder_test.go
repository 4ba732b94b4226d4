package qr

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSVG(t *testing.T) {
	bitmap := [][]bool{
		{true, false},
		{true, true},
	}

	got := string(renderSVG(bitmap, 128, 1))

	want := `<svg xmlns="http://www.w3.org/2000/svg" width="128" height="128" viewBox="0 0 4 4" shape-rendering="crispEdges">` +
		`<path fill="#ffffff" d="M0 0h4v4H0z"/>` +
		`<path stroke="#000000" d="M1 1.5h1 M1 2.5h2"/></svg>` + "\n"

	assert.Equal(t, want, got)
}

func TestRenderSVGWithoutDarkModules(t *testing.T) {
	got := string(renderSVG([][]bool{{false}}, 200, 0))

	assert.Contains(t, got, `viewBox="0 0 1 1"`)
	assert.Contains(t, got, `<path stroke="#000000" d=""/>`)
}

var viewBoxPattern = regexp.MustCompile(`viewBox="0 0 (\d+) (\d+)"`)

func TestSVGEncoderEncode(t *testing.T) {
	enc := NewSVGEncoder()

	svg, err := enc.Encode("https://example.com", 300)
	require.NoError(t, err)

	doc := string(svg)
	assert.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg" width="300" height="300" `))
	assert.True(t, strings.HasSuffix(doc, "</svg>\n"))

	code, err := qrcode.New("https://example.com", qrcode.Medium)
	require.NoError(t, err)
	code.DisableBorder = true
	modules := len(code.Bitmap()) + 2*Margin

	m := viewBoxPattern.FindStringSubmatch(doc)
	require.Len(t, m, 3)
	assert.Equal(t, strconv.Itoa(modules), m[1])
	assert.Equal(t, m[1], m[2])
}

func TestSVGEncoderIsDeterministic(t *testing.T) {
	enc := NewSVGEncoder()

	first, err := enc.Encode("hello world", 256)
	require.NoError(t, err)
	second, err := enc.Encode("hello world", 256)
	require.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := enc.Encode("hello world!", 256)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestSVGEncoderWidthOnlyChangesAttributes(t *testing.T) {
	enc := NewSVGEncoder()

	small, err := enc.Encode("scale me", 128)
	require.NoError(t, err)
	large, err := enc.Encode("scale me", 1024)
	require.NoError(t, err)

	strip := func(b []byte) string {
		s := strings.Replace(string(b), `width="128" height="128"`, "", 1)
		return strings.Replace(s, `width="1024" height="1024"`, "", 1)
	}
	assert.Equal(t, strip(small), strip(large))
}

func TestSVGEncoderUnencodable(t *testing.T) {
	_, err := NewSVGEncoder().Encode(strings.Repeat("a", 3000), 256)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnencodable))
}
