package security

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindXSS Kind = iota + 1
	KindSQL
	KindNoSQL
)

func (k Kind) String() string {
	switch k {
	case KindXSS:
		return "xss"
	case KindSQL:
		return "sql"
	case KindNoSQL:
		return "nosql"
	default:
		return "unknown"
	}
}

func (k Kind) DefaultMessage() string {
	switch k {
	case KindXSS:
		return "Potential XSS attack detected"
	case KindSQL:
		return "Potential SQL injection detected"
	case KindNoSQL:
		return "Potential NoSQL injection detected"
	default:
		return "Potential injection detected"
	}
}

// Error is a rejected request value. Its message is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
}

func NewError(kind Kind, message ...string) *Error {
	msg := kind.DefaultMessage()
	if len(message) > 0 && message[0] != "" {
		msg = message[0]
	}
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) StatusCode() int {
	return http.StatusBadRequest
}

func (e *Error) Retryable() bool {
	return false
}

func IsSecurityError(err error) (*Error, bool) {
	var secErr *Error
	if errors.As(err, &secErr) {
		return secErr, true
	}
	return nil, false
}
