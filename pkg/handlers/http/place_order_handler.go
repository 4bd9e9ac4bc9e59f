package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type placeOrderHandler struct {
	*BaseHandler
	orders marketplace.Orders
}

func NewPlaceOrderHandler(base *BaseHandler, orders marketplace.Orders) Handler {
	return &placeOrderHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

// Handle @Summary Place an Order
// @Description Stores the order and takes its quantity out of the product stock
// @Tags Orders
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 201 {object} order.Order
// @Failure 400 {object} map[string]interface{} "Invalid order"
// @Failure 409 {object} map[string]interface{} "Not enough stock"
// @Router /api/v1/orders [post]
func (h *placeOrderHandler) Handle(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	placed, err := h.orders.PlaceOrder(c.UserContext(), tenantID(c), payload)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(placed)
}
