package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/NeuralTrust/Marketplace/pkg/domain/customer"
	"github.com/gofiber/fiber/v2"
)

type updateCustomerHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewUpdateCustomerHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &updateCustomerHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Update a Customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Customer ID"
// @Success 200 {object} customer.Customer
// @Failure 404 {object} dberrors.ClientError "Customer not found"
// @Router /api/v1/customers/{id} [put]
func (h *updateCustomerHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid customer ID")
	}

	var entity customer.Customer
	if err := c.BodyParser(&entity); err != nil {
		return badRequest(c, "invalid request body")
	}
	entity.ID = id
	entity.TenantID = tenantID(c)
	if err := entity.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.catalog.UpdateCustomer(c.UserContext(), &entity); err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
