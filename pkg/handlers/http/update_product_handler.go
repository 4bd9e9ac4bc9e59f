package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/gofiber/fiber/v2"
)

type updateProductHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewUpdateProductHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &updateProductHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Update a Product
// @Tags Products
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Failure 404 {object} dberrors.ClientError "Product not found"
// @Router /api/v1/products/{id} [put]
func (h *updateProductHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid product ID")
	}

	var entity product.Product
	if err := c.BodyParser(&entity); err != nil {
		return badRequest(c, "invalid request body")
	}
	entity.ID = id
	entity.TenantID = tenantID(c)
	if err := entity.Validate(); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.catalog.UpdateProduct(c.UserContext(), &entity); err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
