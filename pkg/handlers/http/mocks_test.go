package http

import (
	"context"

	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/NeuralTrust/Marketplace/pkg/domain/customer"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type catalogMock struct{ mock.Mock }

func (m *catalogMock) CreateProduct(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *catalogMock) GetProduct(ctx context.Context, tenantID string, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, tenantID, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *catalogMock) ListProducts(ctx context.Context, tenantID string, offset, limit int) ([]product.Product, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	p, _ := args.Get(0).([]product.Product)
	return p, args.Error(1)
}

func (m *catalogMock) UpdateProduct(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *catalogMock) DeleteProduct(ctx context.Context, tenantID string, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *catalogMock) CreateCustomer(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *catalogMock) GetCustomer(ctx context.Context, tenantID string, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *catalogMock) ListCustomers(ctx context.Context, tenantID string, offset, limit int) ([]customer.Customer, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	c, _ := args.Get(0).([]customer.Customer)
	return c, args.Error(1)
}

func (m *catalogMock) UpdateCustomer(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *catalogMock) DeleteCustomer(ctx context.Context, tenantID string, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

func (m *catalogMock) ReadProductAndCustomer(
	ctx context.Context,
	tenantID string,
	productID, customerID uuid.UUID,
) (*marketplace.ProductAndCustomer, error) {
	args := m.Called(ctx, tenantID, productID, customerID)
	r, _ := args.Get(0).(*marketplace.ProductAndCustomer)
	return r, args.Error(1)
}

type ordersMock struct{ mock.Mock }

func (m *ordersMock) PlaceOrder(ctx context.Context, tenantID string, payload map[string]any) (*order.Order, error) {
	args := m.Called(ctx, tenantID, payload)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *ordersMock) GetOrder(ctx context.Context, tenantID string, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *ordersMock) ListOrders(ctx context.Context, tenantID string, offset, limit int) ([]order.Order, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	o, _ := args.Get(0).([]order.Order)
	return o, args.Error(1)
}

func (m *ordersMock) RunStoredProcedure(ctx context.Context, tenantID string, payload map[string]any) (*order.Order, error) {
	args := m.Called(ctx, tenantID, payload)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *ordersMock) CleanupProcedureData(ctx context.Context, tenantID string, orderID uuid.UUID) error {
	return m.Called(ctx, tenantID, orderID).Error(0)
}

type destinationMock struct{ mock.Mock }

func (m *destinationMock) Post(ctx context.Context, name, path string, payload any) error {
	return m.Called(ctx, name, path, payload).Error(0)
}
