package product

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, tenantID string, id uuid.UUID) (*Product, error)
	Create(ctx context.Context, product *Product) error
	List(ctx context.Context, tenantID string, offset, limit int) ([]Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
}
