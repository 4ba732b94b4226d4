// Package validation contains the logic for validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or numeric ranges) defined in struct tags,
// merges them with type errors found while reading untyped
// input, and extracts everything into a format the client can
// understand
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/qrgen/internal/errs"
	"github.com/go-playground/validator/v10"
)

// validate is shared; *validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

// newValidator builds a validator that reports fields by their json name,
// so error keys match what the client sent ("text", not "Text").
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return strings.ToLower(fld.Name)
		}
		return name
	})

	return v
}

// Validatable is implemented by request types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,max=500"`)
// - Implement Validate() error that calls validation.Struct(req)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags,
// e.g. a JSON number where a string was expected.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// Add appends a violation for field.
func (c *CustomValidationErrors) Add(field, message string) {
	*c = append(*c, CustomValidationError{Field: field, Message: message})
}

// Has reports whether field already carries a violation.
func (c CustomValidationErrors) Has(field string) bool {
	for _, e := range c {
		if e.Field == field {
			return true
		}
	}
	return false
}

// Struct runs the struct-tag rules on v.
// It returns validator.ValidationErrors on failure.
func Struct(v any) error {
	return validate.Struct(v)
}

// Check runs v.Validate() and merges its failures into found, which holds the
// violations collected before tag validation (usually type errors).
//
// A field already present in found is not reported again by the tag rules:
// a value that failed its type check has no meaningful range to check.
//
// Returns nil when nothing is wrong, otherwise CustomValidationErrors holding
// every violation.
func Check(found CustomValidationErrors, v Validatable) error {
	merged := append(CustomValidationErrors(nil), found...)

	if err := v.Validate(); err != nil {
		for _, fe := range ToFieldErrors(err) {
			if found.Has(fe.Field) {
				continue
			}
			merged.Add(fe.Field, fe.Error)
		}
	}

	if len(merged) == 0 {
		return nil
	}
	return merged
}

// HTTPError converts a validation failure into a 400 with field-grouped errors.
func HTTPError(err error) *errs.HTTPError {
	return errs.ValidationError(ToFieldErrors(err))
}

// ToFieldErrors extracts field errors from either validator.ValidationErrors
// or CustomValidationErrors. Any other error becomes a single entry keyed
// by an empty field name.
func ToFieldErrors(err error) []errs.FieldError {
	var fieldErrors []errs.FieldError

	switch e := err.(type) {
	case CustomValidationErrors:
		for _, ce := range e {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}

	case validator.ValidationErrors:
		for _, ve := range e {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ve.Field(),
				Error: message(ve),
			})
		}

	default:
		if err != nil {
			fieldErrors = append(fieldErrors, errs.FieldError{Error: err.Error()})
		}
	}

	return fieldErrors
}

// message converts a validator.FieldError into a user-friendly reason.
func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"

	case "min", "gte":
		// min tag means:
		// - for strings: minimum length (in runes)
		// - for numbers: minimum value
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max", "lte":
		if err.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())

	default:
		// Fallback for tags not explicitly handled above.
		if err.Param() != "" {
			return fmt.Sprintf("failed %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed %s", err.Tag())
	}
}
