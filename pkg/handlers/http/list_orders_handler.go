package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type listOrdersHandler struct {
	*BaseHandler
	orders marketplace.Orders
}

func NewListOrdersHandler(base *BaseHandler, orders marketplace.Orders) Handler {
	return &listOrdersHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

// Handle @Summary Retrieve all Orders
// @Tags Orders
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 200 {array} order.Order
// @Router /api/v1/orders [get]
func (h *listOrdersHandler) Handle(c *fiber.Ctx) error {
	offset, limit := pagination(c)

	entities, err := h.orders.ListOrders(c.UserContext(), tenantID(c), offset, limit)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entities)
}
