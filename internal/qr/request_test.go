package qr_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/deppfellow/qrgen/internal/errs"
	"github.com/deppfellow/qrgen/internal/qr"
	"github.com/deppfellow/qrgen/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.Error(t, err)
	return errs.GroupFieldErrors(validation.ToFieldErrors(err))
}

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		in    qr.Input
		want  qr.EncodeRequest
		width int
	}{
		{
			name:  "text only uses the default width",
			in:    qr.Input{"text": "hello"},
			want:  qr.EncodeRequest{Text: "hello"},
			width: qr.DefaultSize,
		},
		{
			name:  "null size is absent",
			in:    qr.Input{"text": "hello", "size": nil},
			want:  qr.EncodeRequest{Text: "hello"},
			width: qr.DefaultSize,
		},
		{
			name:  "lower bound",
			in:    qr.Input{"text": "x", "size": json.Number("128")},
			want:  qr.EncodeRequest{Text: "x", Size: intPtr(128)},
			width: 128,
		},
		{
			name:  "upper bound",
			in:    qr.Input{"text": "x", "size": float64(1024)},
			want:  qr.EncodeRequest{Text: "x", Size: intPtr(1024)},
			width: 1024,
		},
		{
			name:  "integral number written with a fraction",
			in:    qr.Input{"text": "x", "size": json.Number("300.0")},
			want:  qr.EncodeRequest{Text: "x", Size: intPtr(300)},
			width: 300,
		},
		{
			name:  "500 characters counted as code points",
			in:    qr.Input{"text": strings.Repeat("é", 500)},
			want:  qr.EncodeRequest{Text: strings.Repeat("é", 500)},
			width: qr.DefaultSize,
		},
		{
			name:  "unknown keys are ignored",
			in:    qr.Input{"text": "hi", "color": "red"},
			want:  qr.EncodeRequest{Text: "hi"},
			width: qr.DefaultSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := qr.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.width, got.Width())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   qr.Input
		want map[string][]string
	}{
		{
			name: "missing text",
			in:   qr.Input{},
			want: map[string][]string{"text": {"is required"}},
		},
		{
			name: "empty text",
			in:   qr.Input{"text": ""},
			want: map[string][]string{"text": {"is required"}},
		},
		{
			name: "text too long",
			in:   qr.Input{"text": strings.Repeat("a", 501)},
			want: map[string][]string{"text": {"must not exceed 500 characters"}},
		},
		{
			name: "text not a string",
			in:   qr.Input{"text": json.Number("42")},
			want: map[string][]string{"text": {"must be a string"}},
		},
		{
			name: "size below range",
			in:   qr.Input{"text": "x", "size": json.Number("127")},
			want: map[string][]string{"size": {"must be at least 128"}},
		},
		{
			name: "size zero",
			in:   qr.Input{"text": "x", "size": float64(0)},
			want: map[string][]string{"size": {"must be at least 128"}},
		},
		{
			name: "size above range",
			in:   qr.Input{"text": "x", "size": json.Number("1025")},
			want: map[string][]string{"size": {"must not exceed 1024"}},
		},
		{
			name: "huge size is still out of range",
			in:   qr.Input{"text": "x", "size": json.Number("1e20")},
			want: map[string][]string{"size": {"must not exceed 1024"}},
		},
		{
			name: "fractional size",
			in:   qr.Input{"text": "x", "size": json.Number("256.5")},
			want: map[string][]string{"size": {"must be an integer"}},
		},
		{
			name: "string size",
			in:   qr.Input{"text": "x", "size": "big"},
			want: map[string][]string{"size": {"must be an integer"}},
		},
		{
			name: "boolean size",
			in:   qr.Input{"text": "x", "size": true},
			want: map[string][]string{"size": {"must be an integer"}},
		},
		{
			name: "both fields wrong",
			in:   qr.Input{"size": json.Number("50")},
			want: map[string][]string{
				"text": {"is required"},
				"size": {"must be at least 128"},
			},
		},
		{
			name: "both fields with type errors",
			in:   qr.Input{"text": false, "size": "x"},
			want: map[string][]string{
				"text": {"must be a string"},
				"size": {"must be an integer"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := qr.Parse(tt.in)
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestInputFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  qr.Input
	}{
		{
			name:  "text and size",
			query: "text=hello&size=300",
			want:  qr.Input{"text": "hello", "size": float64(300)},
		},
		{
			name:  "missing text stays missing",
			query: "size=300",
			want:  qr.Input{"size": float64(300)},
		},
		{
			name:  "empty text is kept",
			query: "text=",
			want:  qr.Input{"text": ""},
		},
		{
			name:  "empty size is absent",
			query: "text=a&size=",
			want:  qr.Input{"text": "a"},
		},
		{
			name:  "padded size is coerced",
			query: "text=a&size=%20300%20",
			want:  qr.Input{"text": "a", "size": float64(300)},
		},
		{
			name:  "non-numeric size is kept raw",
			query: "text=a&size=large",
			want:  qr.Input{"text": "a", "size": "large"},
		},
		{
			name:  "first value wins",
			query: "text=one&text=two",
			want:  qr.Input{"text": "one"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, qr.InputFromQuery(q))
		})
	}
}

func TestParseQuerySize(t *testing.T) {
	q, err := url.ParseQuery("text=a&size=300.0")
	require.NoError(t, err)

	req, err := qr.Parse(qr.InputFromQuery(q))
	require.NoError(t, err)
	assert.Equal(t, 300, req.Width())

	q, err = url.ParseQuery("text=a&size=12abc")
	require.NoError(t, err)

	_, err = qr.Parse(qr.InputFromQuery(q))
	assert.Equal(t, map[string][]string{"size": {"must be an integer"}}, fieldErrors(t, err))
}
