package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type getOrderHandler struct {
	*BaseHandler
	orders marketplace.Orders
}

func NewGetOrderHandler(base *BaseHandler, orders marketplace.Orders) Handler {
	return &getOrderHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

// Handle @Summary Retrieve an Order by ID
// @Tags Orders
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Order ID"
// @Success 200 {object} order.Order
// @Failure 404 {object} dberrors.ClientError "Order not found"
// @Router /api/v1/orders/{id} [get]
func (h *getOrderHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid order ID")
	}

	entity, err := h.orders.GetOrder(c.UserContext(), tenantID(c), id)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
