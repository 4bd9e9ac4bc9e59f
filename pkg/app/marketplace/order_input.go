package marketplace

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/Marketplace/pkg/domain"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	"github.com/NeuralTrust/Marketplace/pkg/utils"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

// OrderInput is the order placement payload as received over the wire.
type OrderInput struct {
	CustomerID string `mapstructure:"customer_id"`
	ProductID  string `mapstructure:"product_id"`
	Quantity   int    `mapstructure:"quantity"`
	OrderDate  string `mapstructure:"order_date"`
}

func DecodeOrderInput(payload map[string]any) (*OrderInput, error) {
	var in OrderInput
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &in,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(payload); err != nil {
		return nil, fmt.Errorf("%w: order payload: %v", domain.ErrInvalidInput, err)
	}
	return &in, nil
}

func (in *OrderInput) toOrder(tenantID string) (*order.Order, error) {
	customerID, err := uuid.Parse(in.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: customer_id: %v", domain.ErrInvalidInput, err)
	}
	productID, err := uuid.Parse(in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: product_id: %v", domain.ErrInvalidInput, err)
	}

	o := &order.Order{
		ID:         uuid.New(),
		TenantID:   tenantID,
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   in.Quantity,
	}
	if in.OrderDate != "" {
		date, err := time.Parse(time.RFC3339, utils.AdjustDate(in.OrderDate))
		if err != nil {
			return nil, fmt.Errorf("%w: order_date: %v", domain.ErrInvalidInput, err)
		}
		o.OrderDate = date.UTC()
	} else {
		o.OrderDate = time.Now().UTC()
	}
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return o, nil
}
