// Package sqlerr specifically handles database errors.
//
// It parses the error codes PostgREST returns (Postgres SQLSTATEs and
// PostgREST's own PGRSTxxx codes) into a small set of categories and
// converts them into application HTTP errors.
package sqlerr

// Code is a database error category.
type Code string

const (
	Other                     Code = "other"
	NoRows                    Code = "no_rows"
	UniqueViolation           Code = "unique_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	NotNullViolation          Code = "not_null_violation"
	CheckViolation            Code = "check_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	UndefinedTable            Code = "undefined_table"
	UndefinedColumn           Code = "undefined_column"
	Unauthorized              Code = "unauthorized"
)

// codes maps raw database codes to categories.
var codes = map[string]Code{
	"PGRST116": NoRows,
	"23505":    UniqueViolation,
	"23503":    ForeignKeyViolation,
	"23502":    NotNullViolation,
	"23514":    CheckViolation,
	"22P02":    InvalidTextRepresentation,
	"22007":    InvalidTextRepresentation, // invalid datetime format
	"42P01":    UndefinedTable,
	"PGRST205": UndefinedTable,
	"42703":    UndefinedColumn,
	"PGRST204": UndefinedColumn,
	"PGRST301": Unauthorized,
	"PGRST302": Unauthorized,
	"42501":    Unauthorized, // insufficient privilege (RLS)
}

// MapCode maps a raw code to its category. Unknown codes map to Other.
func MapCode(code string) Code {
	if c, ok := codes[code]; ok {
		return c
	}
	return Other
}

// Error is a classified database error.
type Error struct {
	Code         Code
	DatabaseCode string
	Message      string
	Details      string
	Hint         string
	Status       int

	driverErr error
}

// Error returns the database message verbatim; it is what 500 responses
// carry. Code and DatabaseCode go to the logs instead.
func (e *Error) Error() string {
	if e.Message == "" && e.driverErr != nil {
		return e.driverErr.Error()
	}
	return e.Message
}

// Unwrap returns the original driver error.
func (e *Error) Unwrap() error {
	return e.driverErr
}
