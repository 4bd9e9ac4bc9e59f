package order

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, tenantID string, id uuid.UUID) (*Order, error)
	List(ctx context.Context, tenantID string, offset, limit int) ([]Order, error)
	// Place stores the order and takes its quantity out of the product
	// stock in one transaction.
	Place(ctx context.Context, order *Order) error
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
}
