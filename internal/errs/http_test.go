package errs

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFieldErrors(t *testing.T) {
	assert.Nil(t, GroupFieldErrors(nil))

	got := GroupFieldErrors([]FieldError{
		{Field: "size", Error: "first"},
		{Field: "text", Error: "is required"},
		{Field: "size", Error: "second"},
	})

	assert.Equal(t, map[string][]string{
		"size": {"first", "second"},
		"text": {"is required"},
	}, got)
}

func TestNormalizedSerializesEmptyCollections(t *testing.T) {
	body, err := json.Marshal(ErrorResponse{Error: NewNotFoundError("Route not found", false, nil).Normalized()})
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":{
		"code":"NOT_FOUND",
		"message":"Route not found",
		"status":404,
		"override":false,
		"formErrors":[],
		"fieldErrors":{}
	}}`, string(body))
}

func TestNormalizedDoesNotMutate(t *testing.T) {
	orig := NewInternalServerError()
	_ = orig.Normalized()

	assert.Nil(t, orig.FormErrors)
	assert.Nil(t, orig.FieldErrors)
}

func TestHTTPErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ValidationError(nil))

	assert.True(t, errors.Is(wrapped, &HTTPError{}))

	var httpErr *HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Error())
}

func TestConstructors(t *testing.T) {
	malformed := NewMalformedBodyError("body must be a JSON object")
	assert.Equal(t, http.StatusBadRequest, malformed.Status)
	assert.Equal(t, []string{"body must be a JSON object"}, malformed.FormErrors)
	assert.Empty(t, malformed.FieldErrors)

	enc := NewEncodingError("text")
	assert.Equal(t, CodeUnencodableText, enc.Code)
	assert.Equal(t, http.StatusBadRequest, enc.Status)
	assert.Equal(t, []string{"text"}, enc.Fields())

	custom := "GONE_MISSING"
	assert.Equal(t, custom, NewNotFoundError("x", false, &custom).Code)

	assert.Equal(t, "METHOD_NOT_ALLOWED", NewMethodNotAllowedError("nope").Code)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", NewInternalServerError().Code)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "REQUEST_ENTITY_TOO_LARGE", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusRequestEntityTooLarge)))
}
