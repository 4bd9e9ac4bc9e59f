package cache

import (
	"context"

	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
)

type noopClient struct{}

// NewNoopClient is used when redis is disabled; every read misses.
func NewNoopClient() Client {
	return noopClient{}
}

func (noopClient) GetProduct(context.Context, string, string) (*product.Product, error) {
	return nil, ErrCacheMiss
}

func (noopClient) SaveProduct(context.Context, *product.Product) error {
	return nil
}

func (noopClient) DeleteProduct(context.Context, string, string) error {
	return nil
}
