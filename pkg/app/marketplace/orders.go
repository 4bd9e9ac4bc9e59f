package marketplace

import (
	"context"
	"fmt"
	"time"

	"github.com/NeuralTrust/Marketplace/pkg/domain"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	"github.com/NeuralTrust/Marketplace/pkg/infra/database"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const storeOrderProcedure = "p_store_order"

type NumberGenerator interface {
	Next(ctx context.Context) (int64, error)
}

type ProcedureCaller interface {
	AdaptToEntity(model any, data map[string]any) (map[string]any, error)
	CallProcedure(ctx context.Context, call database.ProcedureCall) error
}

type Orders interface {
	PlaceOrder(ctx context.Context, tenantID string, payload map[string]any) (*order.Order, error)
	GetOrder(ctx context.Context, tenantID string, id uuid.UUID) (*order.Order, error)
	ListOrders(ctx context.Context, tenantID string, offset, limit int) ([]order.Order, error)
	RunStoredProcedure(ctx context.Context, tenantID string, payload map[string]any) (*order.Order, error)
	CleanupProcedureData(ctx context.Context, tenantID string, orderID uuid.UUID) error
}

type orders struct {
	repo       order.Repository
	numbers    NumberGenerator
	procedures ProcedureCaller
	logger     *logrus.Logger
}

func NewOrders(
	repo order.Repository,
	numbers NumberGenerator,
	procedures ProcedureCaller,
	logger *logrus.Logger,
) Orders {
	return &orders{
		repo:       repo,
		numbers:    numbers,
		procedures: procedures,
		logger:     logger,
	}
}

func (s *orders) PlaceOrder(ctx context.Context, tenantID string, payload map[string]any) (*order.Order, error) {
	o, err := s.buildOrder(ctx, tenantID, payload)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Place(ctx, o); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{
		"order_id":     o.ID.String(),
		"order_number": o.OrderNumber,
	}).Info("order placed")
	return o, nil
}

func (s *orders) GetOrder(ctx context.Context, tenantID string, id uuid.UUID) (*order.Order, error) {
	return s.repo.Get(ctx, tenantID, id)
}

func (s *orders) ListOrders(ctx context.Context, tenantID string, offset, limit int) ([]order.Order, error) {
	return s.repo.List(ctx, tenantID, offset, limit)
}

// RunStoredProcedure stores the order through p_store_order and reads it
// back.
func (s *orders) RunStoredProcedure(ctx context.Context, tenantID string, payload map[string]any) (*order.Order, error) {
	o, err := s.buildOrder(ctx, tenantID, payload)
	if err != nil {
		return nil, err
	}

	row, err := s.procedures.AdaptToEntity(&order.Order{}, map[string]any{
		"id":           o.ID,
		"tenant_id":    o.TenantID,
		"order_number": o.OrderNumber,
		"customer_id":  o.CustomerID,
		"product_id":   o.ProductID,
		"quantity":     o.Quantity,
		"order_date":   o.OrderDate,
		"created_at":   time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	err = s.procedures.CallProcedure(ctx, database.ProcedureCall{
		Procedure: storeOrderProcedure,
		Table:     o.TableName(),
		NewRow:    row,
	})
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Get(ctx, tenantID, o.ID)
	if err != nil {
		if domain.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %w", domain.ErrOrderNotRetrieved, err)
		}
		return nil, err
	}
	return stored, nil
}

func (s *orders) CleanupProcedureData(ctx context.Context, tenantID string, orderID uuid.UUID) error {
	return s.repo.Delete(ctx, tenantID, orderID)
}

func (s *orders) buildOrder(ctx context.Context, tenantID string, payload map[string]any) (*order.Order, error) {
	if tenantID == "" {
		return nil, domain.ErrTenantRequired
	}
	in, err := DecodeOrderInput(payload)
	if err != nil {
		return nil, err
	}
	o, err := in.toOrder(tenantID)
	if err != nil {
		return nil, err
	}
	number, err := s.numbers.Next(ctx)
	if err != nil {
		return nil, err
	}
	o.OrderNumber = number
	return o, nil
}
