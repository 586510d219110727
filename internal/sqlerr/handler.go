package sqlerr

import (
	"errors"

	"github.com/deppfellow/shoeclean/internal/errs"
	"github.com/deppfellow/shoeclean/internal/lib/postgrest"
)

// ErrCode reports the category of err.
//
// It understands both an already converted *Error and a raw
// *postgrest.Error anywhere in the chain; anything else is Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *postgrest.Error
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// DatabaseCode returns the raw SQLSTATE or PGRST code carried by err, or
// "" when the failure never reached the database.
func DatabaseCode(err error) string {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.DatabaseCode
	}
	var pgErr *postgrest.Error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsNoRows reports whether err means "the single-row read matched nothing".
func IsNoRows(err error) bool {
	return ErrCode(err) == NoRows
}

// ConvertPostgrestError converts a raw PostgREST error into *Error.
func ConvertPostgrestError(src *postgrest.Error) *Error {
	return &Error{
		Code:         MapCode(src.Code),
		DatabaseCode: src.Code,
		Message:      src.Message,
		Details:      src.Details,
		Hint:         src.Hint,
		Status:       src.Status,
		driverErr:    src,
	}
}

// HandleError converts a database error into an application-level error.
//
//   - *errs.HTTPError: returned unchanged
//   - no rows: 404 with notFoundMessage
//   - anything else: 500 with failureMessage and the text of the innermost
//     error, leaving request URLs and wrap prefixes to the logs
//
// Constraint violations surface as 500 like any other database failure.
func HandleError(err error, failureMessage, notFoundMessage string) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if IsNoRows(err) {
		return errs.NewNotFoundError(notFoundMessage, nil)
	}

	var pgErr *postgrest.Error
	if errors.As(err, &pgErr) {
		return errs.NewInternalServerError(failureMessage, ConvertPostgrestError(pgErr))
	}

	httpErr = errs.NewInternalServerError(failureMessage, err)
	httpErr.Detail = rootCause(err).Error()
	return httpErr
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
