package sqlerr

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the application-level category of a database error.
type Code string

const (
	// Other covers everything not recognized below.
	Other Code = "other"

	// ConnectionException groups SQLSTATE class 08: the database was
	// unreachable or the connection was lost mid-statement.
	ConnectionException Code = "connection_exception"

	// InvalidInput groups SQLSTATE class 22 (data exceptions): a parameter
	// could not be interpreted as the column's type.
	InvalidInput Code = "invalid_input"

	// Constraint violations, SQLSTATE class 23.
	NotNullViolation    Code = "not_null_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
	UniqueViolation     Code = "unique_violation"
	CheckViolation      Code = "check_violation"
)

// MapCode maps a raw SQLSTATE to a Code. Specific class-23 states are mapped
// individually; classes 08 and 22 are mapped wholesale.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	}

	if len(sqlstate) >= 2 {
		switch sqlstate[:2] {
		case "08":
			return ConnectionException
		case "22":
			return InvalidInput
		}
	}

	return Other
}

// Error is a classified database error. It keeps the original SQLSTATE and
// the schema metadata the driver reported so callers can construct precise
// messages.
type Error struct {
	Code           Code
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (SQLSTATE %s): %s", e.Code, e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw Postgres error into a classified Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
