package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type runProcedureHandler struct {
	*BaseHandler
	orders marketplace.Orders
}

func NewRunProcedureHandler(base *BaseHandler, orders marketplace.Orders) Handler {
	return &runProcedureHandler{
		BaseHandler: base,
		orders:      orders,
	}
}

// Handle @Summary Store an Order through the p_store_order procedure
// @Tags Procedures
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 201 {object} order.Order
// @Failure 404 {object} dberrors.ClientError "Not enough stock or order not retrieved"
// @Router /api/v1/procedures/order [post]
func (h *runProcedureHandler) Handle(c *fiber.Ctx) error {
	var payload map[string]any
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	stored, err := h.orders.RunStoredProcedure(c.UserContext(), tenantID(c), payload)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(stored)
}
