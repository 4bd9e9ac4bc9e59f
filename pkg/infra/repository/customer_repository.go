package repository

import (
	"context"

	"github.com/NeuralTrust/Marketplace/pkg/domain/customer"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) customer.Repository {
	return &CustomerRepository{
		db: db,
	}
}

func (r *CustomerRepository) Get(ctx context.Context, tenantID string, id uuid.UUID) (*customer.Customer, error) {
	var entity customer.Customer
	err := r.db.WithContext(ctx).
		First(&entity, "id = ? AND tenant_id = ?", id, tenantID).Error
	if err != nil {
		return nil, translate("customer", id, err)
	}
	return &entity, nil
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	return translate("customer", c.ID, r.db.WithContext(ctx).Create(c).Error)
}

func (r *CustomerRepository) List(ctx context.Context, tenantID string, offset, limit int) ([]customer.Customer, error) {
	var customers []customer.Customer
	err := r.db.WithContext(ctx).
		Scopes(paginate(offset, limit)).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&customers).Error
	if err != nil {
		return nil, translate("customer", uuid.Nil, err)
	}
	return customers, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	result := r.db.WithContext(ctx).
		Model(c).
		Where("tenant_id = ?", c.TenantID).
		Select("name", "email", "address", "updated_at").
		Updates(c)
	if result.Error != nil {
		return translate("customer", c.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return translate("customer", c.ID, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Delete(&customer.Customer{})
	if result.Error != nil {
		return translate("customer", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return translate("customer", id, gorm.ErrRecordNotFound)
	}
	return nil
}
