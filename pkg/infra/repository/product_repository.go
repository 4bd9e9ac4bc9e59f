package repository

import (
	"context"

	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) product.Repository {
	return &ProductRepository{
		db: db,
	}
}

func (r *ProductRepository) Get(ctx context.Context, tenantID string, id uuid.UUID) (*product.Product, error) {
	var entity product.Product
	err := r.db.WithContext(ctx).
		First(&entity, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, translate("product", id, err)
	}
	return &entity, nil
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	return translate("product", p.ID, r.db.WithContext(ctx).Create(p).Error)
}

func (r *ProductRepository) List(ctx context.Context, tenantID string, offset, limit int) ([]product.Product, error) {
	var products []product.Product
	err := r.db.WithContext(ctx).
		Scopes(paginate(offset, limit)).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, translate("product", uuid.Nil, err)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	result := r.db.WithContext(ctx).
		Model(p).
		Where("tenant_id = ?", p.TenantID).
		Select("name", "description", "price", "stock", "updated_at").
		Updates(p)
	if result.Error != nil {
		return translate("product", p.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return translate("product", p.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&product.Product{})
	if result.Error != nil {
		return translate("product", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return translate("product", id, gorm.ErrRecordNotFound)
	}
	return nil
}
