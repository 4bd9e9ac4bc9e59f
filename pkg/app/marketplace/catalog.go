package marketplace

import (
	"context"
	"errors"

	"github.com/NeuralTrust/Marketplace/pkg/domain/customer"
	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/NeuralTrust/Marketplace/pkg/infra/cache"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Catalog interface {
	CreateProduct(ctx context.Context, p *product.Product) error
	GetProduct(ctx context.Context, tenantID string, id uuid.UUID) (*product.Product, error)
	ListProducts(ctx context.Context, tenantID string, offset, limit int) ([]product.Product, error)
	UpdateProduct(ctx context.Context, p *product.Product) error
	DeleteProduct(ctx context.Context, tenantID string, id uuid.UUID) error

	CreateCustomer(ctx context.Context, c *customer.Customer) error
	GetCustomer(ctx context.Context, tenantID string, id uuid.UUID) (*customer.Customer, error)
	ListCustomers(ctx context.Context, tenantID string, offset, limit int) ([]customer.Customer, error)
	UpdateCustomer(ctx context.Context, c *customer.Customer) error
	DeleteCustomer(ctx context.Context, tenantID string, id uuid.UUID) error

	ReadProductAndCustomer(ctx context.Context, tenantID string, productID, customerID uuid.UUID) (*ProductAndCustomer, error)
}

type ProductAndCustomer struct {
	Product  *product.Product   `json:"product"`
	Customer *customer.Customer `json:"customer"`
}

type catalog struct {
	products  product.Repository
	customers customer.Repository
	cache     cache.Client
	logger    *logrus.Logger
}

func NewCatalog(
	products product.Repository,
	customers customer.Repository,
	cacheClient cache.Client,
	logger *logrus.Logger,
) Catalog {
	return &catalog{
		products:  products,
		customers: customers,
		cache:     cacheClient,
		logger:    logger,
	}
}

func (c *catalog) CreateProduct(ctx context.Context, p *product.Product) error {
	if err := c.products.Create(ctx, p); err != nil {
		return err
	}
	c.saveToCache(ctx, p)
	return nil
}

// GetProduct reads through the product cache. Cache failures only degrade
// to a database read.
func (c *catalog) GetProduct(ctx context.Context, tenantID string, id uuid.UUID) (*product.Product, error) {
	cached, err := c.cache.GetProduct(ctx, tenantID, id.String())
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.WithError(err).Warn("product cache read failed")
	}

	p, err := c.products.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	c.saveToCache(ctx, p)
	return p, nil
}

func (c *catalog) ListProducts(ctx context.Context, tenantID string, offset, limit int) ([]product.Product, error) {
	return c.products.List(ctx, tenantID, offset, limit)
}

func (c *catalog) UpdateProduct(ctx context.Context, p *product.Product) error {
	if err := c.products.Update(ctx, p); err != nil {
		return err
	}
	c.saveToCache(ctx, p)
	return nil
}

func (c *catalog) DeleteProduct(ctx context.Context, tenantID string, id uuid.UUID) error {
	if err := c.products.Delete(ctx, tenantID, id); err != nil {
		return err
	}
	if err := c.cache.DeleteProduct(ctx, tenantID, id.String()); err != nil {
		c.logger.WithError(err).Warn("product cache invalidation failed")
	}
	return nil
}

func (c *catalog) CreateCustomer(ctx context.Context, cu *customer.Customer) error {
	return c.customers.Create(ctx, cu)
}

func (c *catalog) GetCustomer(ctx context.Context, tenantID string, id uuid.UUID) (*customer.Customer, error) {
	return c.customers.Get(ctx, tenantID, id)
}

func (c *catalog) ListCustomers(ctx context.Context, tenantID string, offset, limit int) ([]customer.Customer, error) {
	return c.customers.List(ctx, tenantID, offset, limit)
}

func (c *catalog) UpdateCustomer(ctx context.Context, cu *customer.Customer) error {
	return c.customers.Update(ctx, cu)
}

func (c *catalog) DeleteCustomer(ctx context.Context, tenantID string, id uuid.UUID) error {
	return c.customers.Delete(ctx, tenantID, id)
}

func (c *catalog) ReadProductAndCustomer(
	ctx context.Context,
	tenantID string,
	productID, customerID uuid.UUID,
) (*ProductAndCustomer, error) {
	p, err := c.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return nil, err
	}
	cu, err := c.customers.Get(ctx, tenantID, customerID)
	if err != nil {
		return nil, err
	}
	return &ProductAndCustomer{Product: p, Customer: cu}, nil
}

func (c *catalog) saveToCache(ctx context.Context, p *product.Product) {
	if err := c.cache.SaveProduct(ctx, p); err != nil {
		c.logger.WithError(err).WithField("product_id", p.ID.String()).Warn("product cache write failed")
	}
}
