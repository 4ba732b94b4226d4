// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures..
// (e.g. field-grouped validation errors or HTTPError for API responses)..
// to ensure the client receive meaningful, actionable, and consistent..
// error messages.
//
// - Return consistent error shapes to API clients (JSON).
// - Group field-level validation errors by field name.
// - Provide errors that play nicely with Go's standard errors package.
package errs

import (
	"sort"
	"strings"
)

// FieldError represents a single field-level validation error.
// Example:
//
//	{ "field": "text", "error": "is required" }
//
// Validators produce a flat list of these; GroupFieldErrors folds them into
// the per-field shape the API returns.
type FieldError struct {
	// Field is the field name/key the error relates to (e.g. "text").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error().
// It is serialized under the "error" key of ErrorResponse.
// Fields:
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: flag to let middleware decide whether to override the message.
//   - FormErrors: problems not tied to one field (e.g. malformed JSON body).
//   - FieldErrors: per-field reasons, grouped by field name.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	// FormErrors is always serialized as a list, never null.
	FormErrors []string `json:"formErrors"`

	// FieldErrors is always serialized as an object, never null.
	FieldErrors map[string][]string `json:"fieldErrors"`
}

// ErrorResponse is the envelope every error response is written in:
//
//	{ "error": { "code": "BAD_REQUEST", ..., "fieldErrors": { "text": ["is required"] } } }
type ErrorResponse struct {
	Error *HTTPError `json:"error"`
}

// Error makes *HTTPError satisfy the built-in `error` interface.
//
// Here it returns the Message, so printing/logging the error shows the message.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is customizes how errors.Is(...) treats HTTPError.
//
// This does NOT compare Code/Status/etc.
// It only checks whether the other thing is the same *type* (*HTTPError).
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// WithMessage returns a *copy* of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:        e.Code,
		Message:     message,
		Status:      e.Status,
		Override:    e.Override,
		FormErrors:  e.FormErrors,
		FieldErrors: e.FieldErrors,
	}
}

// Normalized returns a copy whose FormErrors and FieldErrors are non-nil,
// so clients always see `[]` and `{}` instead of null.
func (e *HTTPError) Normalized() *HTTPError {
	out := e.WithMessage(e.Message)
	if out.FormErrors == nil {
		out.FormErrors = []string{}
	}
	if out.FieldErrors == nil {
		out.FieldErrors = map[string][]string{}
	}
	return out
}

// Fields returns the names of the fields that carry at least one error, sorted.
func (e *HTTPError) Fields() []string {
	fields := make([]string, 0, len(e.FieldErrors))
	for field := range e.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// GroupFieldErrors folds a flat list of field errors into a map keyed by
// field name. Order of reasons within a field is preserved.
//
// Returns nil for an empty input.
func GroupFieldErrors(fieldErrors []FieldError) map[string][]string {
	if len(fieldErrors) == 0 {
		return nil
	}

	grouped := make(map[string][]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		grouped[fe.Field] = append(grouped[fe.Field], fe.Error)
	}
	return grouped
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
//
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
