package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SequenceName = "order_number_seq"
	NumberField  = "order_number"
)

type Order struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID    string    `json:"tenant_id" gorm:"not null;index"`
	OrderNumber int64     `json:"order_number" gorm:"not null"`
	CustomerID  uuid.UUID `json:"customer_id" gorm:"type:uuid;not null"`
	ProductID   uuid.UUID `json:"product_id" gorm:"type:uuid;not null"`
	Quantity    int       `json:"quantity" gorm:"not null"`
	OrderDate   time.Time `json:"order_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now().UTC()
	}
	return o.Validate()
}

func (o *Order) Validate() error {
	if o.CustomerID == uuid.Nil {
		return fmt.Errorf("customer_id is required")
	}
	if o.ProductID == uuid.Nil {
		return fmt.Errorf("product_id is required")
	}
	if o.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

func (o *Order) TableName() string {
	return "orders"
}
