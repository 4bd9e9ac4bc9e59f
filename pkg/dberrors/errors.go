package dberrors

import (
	"net/http"
	"strings"
)

type Kind int

const (
	KindDuplicateKey Kind = iota + 1
	KindResourceNotFound
	KindDatabase
)

func (k Kind) String() string {
	switch k {
	case KindDuplicateKey:
		return "duplicate_key"
	case KindResourceNotFound:
		return "resource_not_found"
	case KindDatabase:
		return "database_error"
	default:
		return "unknown"
	}
}

const UnexpectedMessage = "Unexpected database error occurred. Contact support with the log ID"

type mapping struct {
	kind    Kind
	message string
	status  int
}

var codeMappings = map[int]mapping{
	CodeUniqueViolation: {kind: KindDuplicateKey, message: "Duplicate key found", status: http.StatusConflict},
	CodeNoData:          {kind: KindResourceNotFound, message: "Resource not found", status: http.StatusNotFound},
}

var fallbackMapping = mapping{kind: KindDatabase, message: UnexpectedMessage, status: http.StatusBadRequest}

func lookup(code int) mapping {
	if m, ok := codeMappings[code]; ok {
		return m
	}
	return fallbackMapping
}

type LogInfo struct {
	LogID     string `json:"logId,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Error is a mapped database failure carrying its correlation info.
type Error struct {
	Kind    Kind
	Message string
	Code    int
	Log     LogInfo
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) ToClient() *ClientError {
	msg := e.Message
	if msg == "" {
		msg = "An error occurred."
	}
	parts := []string{msg}
	if e.Log.LogID != "" {
		parts = append(parts, "Log ID: "+e.Log.LogID)
	}
	if e.Log.Timestamp != "" {
		parts = append(parts, "Timestamp: "+e.Log.Timestamp)
	}

	code := e.Code
	if code == 0 {
		code = http.StatusInternalServerError
	}
	return &ClientError{
		Code:    code,
		Message: strings.Join(parts, " | "),
		Detail:  e.Log,
	}
}

// ClientError is the response body sent for a mapped database failure.
type ClientError struct {
	Code    int     `json:"code"`
	Message string  `json:"message"`
	Detail  LogInfo `json:"detail"`
}

func (e *ClientError) Error() string {
	return e.Message
}
