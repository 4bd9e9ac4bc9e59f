package repository

import (
	"context"

	"github.com/NeuralTrust/Marketplace/pkg/domain"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) order.Repository {
	return &OrderRepository{
		db: db,
	}
}

func (r *OrderRepository) Get(ctx context.Context, tenantID string, id uuid.UUID) (*order.Order, error) {
	var entity order.Order
	err := r.db.WithContext(ctx).
		First(&entity, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, translate("order", id, err)
	}
	return &entity, nil
}

func (r *OrderRepository) List(ctx context.Context, tenantID string, offset, limit int) ([]order.Order, error) {
	var orders []order.Order
	err := r.db.WithContext(ctx).
		Scopes(paginate(offset, limit)).
		Where("tenant_id = ?", tenantID).
		Order("order_number DESC").
		Find(&orders).Error
	if err != nil {
		return nil, translate("order", uuid.Nil, err)
	}
	return orders, nil
}

func (r *OrderRepository) Place(ctx context.Context, o *order.Order) (err error) {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translate("order", o.ID, tx.Error)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if err = tx.Create(o).Error; err != nil {
		return translate("order", o.ID, err)
	}

	result := tx.Model(&product.Product{}).
		Where("id = ? AND tenant_id = ? AND stock >= ?", o.ProductID, o.TenantID, o.Quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", o.Quantity))
	if result.Error != nil {
		return translate("product", o.ProductID, result.Error)
	}
	if result.RowsAffected != 1 {
		return domain.ErrStockUpdateFailed
	}

	if err = tx.Commit().Error; err != nil {
		return translate("order", o.ID, err)
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&order.Order{})
	if result.Error != nil {
		return translate("order", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return translate("order", id, gorm.ErrRecordNotFound)
	}
	return nil
}
