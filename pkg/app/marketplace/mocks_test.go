package marketplace

import (
	"context"

	"github.com/NeuralTrust/Marketplace/pkg/domain/customer"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/NeuralTrust/Marketplace/pkg/infra/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type productRepoMock struct{ mock.Mock }

func (m *productRepoMock) Get(ctx context.Context, tenantID string, id uuid.UUID) (*product.Product, error) {
	args := m.Called(ctx, tenantID, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Create(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *productRepoMock) List(ctx context.Context, tenantID string, offset, limit int) ([]product.Product, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	p, _ := args.Get(0).([]product.Product)
	return p, args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *productRepoMock) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type customerRepoMock struct{ mock.Mock }

func (m *customerRepoMock) Get(ctx context.Context, tenantID string, id uuid.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}

func (m *customerRepoMock) Create(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *customerRepoMock) List(ctx context.Context, tenantID string, offset, limit int) ([]customer.Customer, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	c, _ := args.Get(0).([]customer.Customer)
	return c, args.Error(1)
}

func (m *customerRepoMock) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *customerRepoMock) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type orderRepoMock struct{ mock.Mock }

func (m *orderRepoMock) Get(ctx context.Context, tenantID string, id uuid.UUID) (*order.Order, error) {
	args := m.Called(ctx, tenantID, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) List(ctx context.Context, tenantID string, offset, limit int) ([]order.Order, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	o, _ := args.Get(0).([]order.Order)
	return o, args.Error(1)
}

func (m *orderRepoMock) Place(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *orderRepoMock) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type cacheMock struct{ mock.Mock }

func (m *cacheMock) GetProduct(ctx context.Context, tenantID, id string) (*product.Product, error) {
	args := m.Called(ctx, tenantID, id)
	p, _ := args.Get(0).(*product.Product)
	return p, args.Error(1)
}

func (m *cacheMock) SaveProduct(ctx context.Context, p *product.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *cacheMock) DeleteProduct(ctx context.Context, tenantID, id string) error {
	return m.Called(ctx, tenantID, id).Error(0)
}

type numbersMock struct{ mock.Mock }

func (m *numbersMock) Next(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type proceduresMock struct{ mock.Mock }

func (m *proceduresMock) AdaptToEntity(model any, data map[string]any) (map[string]any, error) {
	args := m.Called(model, data)
	row, _ := args.Get(0).(map[string]any)
	return row, args.Error(1)
}

func (m *proceduresMock) CallProcedure(ctx context.Context, call database.ProcedureCall) error {
	return m.Called(ctx, call).Error(0)
}
