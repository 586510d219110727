package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "nama", "error": "is required" }
type FieldError struct {
	// Field is the JSON key the error relates to (e.g. "tanggalMasuk").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface via Error() and is serialized
// directly to JSON by the global error handler.
// Fields:
//   - Code: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message shown to the client.
//   - Status: HTTP status code.
//   - Detail: raw underlying error text, sent as "error" (500s only).
//   - Errors: list of per-field errors (validation).
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`

	// Detail carries the database/transport error message for 500 responses.
	Detail string `json:"error,omitempty"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors,omitempty"`

	// cause is the wrapped error, kept for logging and errors.Unwrap.
	cause error
}

// Error makes *HTTPError satisfy the built-in `error` interface.
// It returns the Message so printing the error shows what the client sees.
func (e *HTTPError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause (if any) to errors.Is / errors.As.
func (e *HTTPError) Unwrap() error {
	return e.cause
}

// Is reports whether target is also an *HTTPError.
//
// It does NOT compare Code/Status. Use errors.As and inspect the fields
// when the exact kind matters.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)

	return ok
}

// MakeUpperCaseWithUnderscores converts a string into an UPPER_CASE_WITH_UNDERSCORES format.
//
// Example:
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
