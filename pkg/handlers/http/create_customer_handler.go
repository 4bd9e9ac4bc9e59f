package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/NeuralTrust/Marketplace/pkg/domain/customer"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createCustomerHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewCreateCustomerHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &createCustomerHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Create a Customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 201 {object} customer.Customer
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} dberrors.ClientError "Duplicate key"
// @Router /api/v1/customers [post]
func (h *createCustomerHandler) Handle(c *fiber.Ctx) error {
	var entity customer.Customer
	if err := c.BodyParser(&entity); err != nil {
		return badRequest(c, "invalid request body")
	}
	entity.ID = uuid.Nil
	entity.TenantID = tenantID(c)
	if err := entity.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.catalog.CreateCustomer(c.UserContext(), &entity); err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
