package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type deleteCustomerHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewDeleteCustomerHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &deleteCustomerHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Delete a Customer
// @Tags Customers
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Customer ID"
// @Success 204 "Customer deleted successfully"
// @Failure 404 {object} dberrors.ClientError "Customer not found"
// @Router /api/v1/customers/{id} [delete]
func (h *deleteCustomerHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid customer ID")
	}

	if err := h.catalog.DeleteCustomer(c.UserContext(), tenantID(c), id); err != nil {
		return h.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
