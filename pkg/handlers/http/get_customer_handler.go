package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type getCustomerHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewGetCustomerHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &getCustomerHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Retrieve a Customer by ID
// @Tags Customers
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Customer ID"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} dberrors.ClientError "Customer not found"
// @Router /api/v1/customers/{id} [get]
func (h *getCustomerHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid customer ID")
	}

	entity, err := h.catalog.GetCustomer(c.UserContext(), tenantID(c), id)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
