package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type listCustomersHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewListCustomersHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &listCustomersHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Retrieve all Customers
// @Tags Customers
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} customer.Customer
// @Router /api/v1/customers [get]
func (h *listCustomersHandler) Handle(c *fiber.Ctx) error {
	offset, limit := pagination(c)

	entities, err := h.catalog.ListCustomers(c.UserContext(), tenantID(c), offset, limit)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entities)
}
