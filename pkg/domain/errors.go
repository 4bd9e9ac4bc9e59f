package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrEntityNotFound    *notFoundError
	ErrInvalidInput      = errors.New("invalid input")
	ErrTenantRequired    = errors.New("tenant id is required")
	ErrStockUpdateFailed = errors.New("stock update failed")
	ErrOrderNotRetrieved = errors.New("the requested order could not be retrieved")
)

type notFoundError struct {
	EntityType string
	ID         uuid.UUID
	cause      error
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s with ID '%s' not found", e.EntityType, e.ID.String())
}

// Unwrap exposes the driver error so it is still mapped as a database error.
func (e *notFoundError) Unwrap() error {
	return e.cause
}

func NewNotFoundError(entityType string, id uuid.UUID, cause error) error {
	return &notFoundError{
		EntityType: entityType,
		ID:         id,
		cause:      cause,
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFoundError *notFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}
