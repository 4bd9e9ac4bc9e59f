package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type cleanupProcedureHandler struct {
	*BaseHandler
	orders marketplace.Orders
}

func NewCleanupProcedureHandler(base *BaseHandler, orders marketplace.Orders) Handler {
	return &cleanupProcedureHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

// Handle @Summary Remove an Order created through the procedure
// @Tags Procedures
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Order ID"
// @Success 204 "Order removed"
// @Router /api/v1/procedures/order/{id} [delete]
func (h *cleanupProcedureHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid order ID")
	}

	if err := h.orders.CleanupProcedureData(c.UserContext(), tenantID(c), id); err != nil {
		return h.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
