package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type createProductHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewCreateProductHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &createProductHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Create a Product
// @Tags Products
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Success 201 {object} product.Product
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} dberrors.ClientError "Duplicate key"
// @Router /api/v1/products [post]
func (h *createProductHandler) Handle(c *fiber.Ctx) error {
	var entity product.Product
	if err := c.BodyParser(&entity); err != nil {
		return badRequest(c, "invalid request body")
	}
	entity.ID = uuid.Nil
	entity.TenantID = tenantID(c)
	if err := entity.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.catalog.CreateProduct(c.UserContext(), &entity); err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
