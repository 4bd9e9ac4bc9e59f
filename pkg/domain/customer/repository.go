package customer

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Get(ctx context.Context, tenantID string, id uuid.UUID) (*Customer, error)
	Create(ctx context.Context, customer *Customer) error
	List(ctx context.Context, tenantID string, offset, limit int) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, tenantID string, id uuid.UUID) error
}
