// Package errs define custom error types and utilities.
//
// Its purpose is to create specific error structures
// (e.g. FieldErrors for request payloads or HTTPError for API responses)
// so clients receive consistent error bodies no matter which
// layer produced the failure.
package errs
