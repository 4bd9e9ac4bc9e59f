package dberrors

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/jackc/pgx/v5/pgconn"
)

// Native database codes surfaced by the driver adapter.
const (
	CodeGeneralError       = 2
	CodeDeadlock           = 133
	CodeQueryCancelled     = 139
	CodeSyntaxError        = 257
	CodeInvalidTable       = 259
	CodeInvalidColumn      = 260
	CodeNotNullViolation   = 287
	CodeUniqueViolation    = 301
	CodeNoData             = 305
	CodeInvalidNumber      = 339
	CodeForeignKeyMismatch = 461
)

const (
	StateNoData = "02000"
	StateNoRows = "P0002"
)

var sqlStateCodes = map[string]int{
	"23505":     CodeUniqueViolation,
	StateNoRows: CodeNoData,
	StateNoData: CodeNoData,
	"23503":     CodeForeignKeyMismatch,
	"23502":     CodeNotNullViolation,
	"42P01":     CodeInvalidTable,
	"42703":     CodeInvalidColumn,
	"22P02":     CodeInvalidNumber,
	"40P01":     CodeDeadlock,
	"57014":     CodeQueryCancelled,
	"42601":     CodeSyntaxError,
}

// RawError is an error raised by the database driver.
type RawError interface {
	error
	DBCode() (int, bool)
	SQLState() string
	Stack() string
}

type DriverError struct {
	Code    int
	State   string
	Message string
	Err     error

	stack string
}

func NewDriverError(code int, state, message string, err error) *DriverError {
	return &DriverError{
		Code:    code,
		State:   state,
		Message: message,
		Err:     err,
		stack:   string(debug.Stack()),
	}
}

// FromPgError translates a Postgres error into its native code.
func FromPgError(pgErr *pgconn.PgError) *DriverError {
	code, ok := sqlStateCodes[pgErr.Code]
	if !ok {
		code = CodeGeneralError
	}
	return NewDriverError(code, pgErr.Code, pgErr.Message, pgErr)
}

// NotFound is the driver error for a query that returned no rows.
func NotFound(message string, err error) *DriverError {
	return NewDriverError(CodeNoData, StateNoRows, message, err)
}

func (e *DriverError) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *DriverError) Unwrap() error {
	return e.Err
}

func (e *DriverError) DBCode() (int, bool) {
	return e.Code, true
}

func (e *DriverError) SQLState() string {
	return e.State
}

func (e *DriverError) Stack() string {
	return e.stack
}

func (e *DriverError) String() string {
	return fmt.Sprintf("db error %d (%s): %s", e.Code, e.State, e.Error())
}

// IsDatabaseError reports whether err carries both a native code and a SQL
// state, the only signal separating driver failures from other errors.
func IsDatabaseError(err error) bool {
	_, ok := asRawError(err)
	return ok
}

func asRawError(err error) (RawError, bool) {
	var raw RawError
	if !errors.As(err, &raw) {
		return nil, false
	}
	code, ok := raw.DBCode()
	if !ok || code == 0 || raw.SQLState() == "" {
		return nil, false
	}
	return raw, true
}
