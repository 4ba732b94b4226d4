package errs

import (
	"net/http"
)

// CodeUnencodableText is returned when the QR library cannot represent the
// requested text (symbol capacity exceeded).
const CodeUnencodableText = "UNENCODABLE_TEXT"

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "BAD_REQUEST")
//   - fieldErrors: optional slice of field errors, grouped by field on the way in
//
// This is designed for validation and “you sent garbage” cases.
func NewBadRequestError(message string, override bool, code *string, fieldErrors []FieldError) *HTTPError {
	// http.StatusText(400) => "Bad Request" => "BAD_REQUEST"
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest))

	// If caller supplies custom code pointer, use it as-is.
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:        formattedCode,
		Message:     message,
		Status:      http.StatusBadRequest,
		Override:    override,
		FieldErrors: GroupFieldErrors(fieldErrors),
	}
}

// NewMalformedBodyError creates a 400 for request bodies that cannot be read
// as a JSON object at all. The reason goes to FormErrors since no single
// field is at fault.
func NewMalformedBodyError(reason string) *HTTPError {
	err := NewBadRequestError("Malformed request body", false, nil, nil)
	err.FormErrors = []string{reason}
	return err
}

// NewEncodingError creates a 400 for text that passed validation but that
// the QR encoder could not fit into a symbol.
func NewEncodingError(field string) *HTTPError {
	code := CodeUnencodableText
	return NewBadRequestError("Text cannot be encoded as a QR code", false, &code, []FieldError{
		{Field: field, Error: "cannot be encoded as a QR code"},
	})
}

// NewNotFoundError creates a 404 Not Found HTTPError.
//
// Supports optional custom code override similar to NewBadRequestError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound))

	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewMethodNotAllowedError creates a 405 for a known path hit with the wrong method.
func NewMethodNotAllowedError(message string) *HTTPError {
	return &HTTPError{
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusMethodNotAllowed)),
		Message: message,
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
//
// Note:
//   - message is the generic status text, not the real internal error message.
//   - Override is false: generic 500s are never rewritten.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// ValidationError converts a list of field errors into a 400 Bad Request HTTPError.
//
// This is a helper so you can do:
//
//	return errs.ValidationError(fieldErrors)
//
// and clients get consistent error structure.
func ValidationError(fieldErrors []FieldError) *HTTPError {
	return NewBadRequestError("Validation failed", true, nil, fieldErrors)
}
