// Package errors provides centralized error definitions for the application.
// Errors are organized by domain to avoid duplication and provide consistent naming.
//
// Naming conventions:
//   - Exported errors (Err*): Use for errors that callers need to check with errors.Is
//   - All sentinel errors should be defined as variables, not inline errors.New calls
//   - Use fmt.Errorf with %w to wrap sentinel errors with context
package errors

import "errors"

// Lookup errors.
var (
	// ErrNotFound is a generic not found error.
	ErrNotFound = errors.New("not found")
)

// Greeting errors.
var (
	// ErrInvalidTemplate indicates a greeting template without exactly one name placeholder.
	ErrInvalidTemplate = errors.New("greeting template must contain exactly one %s placeholder")
)

// Translation errors.
var (
	// ErrInvalidLanguage indicates a language tag that could not be parsed.
	ErrInvalidLanguage = errors.New("invalid language tag")

	// ErrUnknownTranslationProvider indicates an unsupported translation provider name.
	ErrUnknownTranslationProvider = errors.New("unknown translation provider")
)

// Response and transport errors.
var (
	// ErrHTTPStatusNotOK indicates an HTTP response with a non-200 status code.
	ErrHTTPStatusNotOK = errors.New("HTTP status not OK")

	// ErrEmptyResponse indicates an empty response was received.
	ErrEmptyResponse = errors.New("empty response")
)

// Configuration and input errors.
var (
	// ErrUnknownStorageDriver indicates an unsupported repository backend.
	ErrUnknownStorageDriver = errors.New("unknown storage driver")

	// ErrUnknownMode indicates an unsupported CLI mode.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrInvalidSeedEntry indicates a seed file entry that failed validation.
	ErrInvalidSeedEntry = errors.New("invalid seed entry")

	// ErrInvalidInput indicates invalid input was provided.
	ErrInvalidInput = errors.New("invalid input")
)

// Is is a convenience wrapper around errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience wrapper around errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
