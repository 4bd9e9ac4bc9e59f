package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type getProductHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewGetProductHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &getProductHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Retrieve a Product by ID
// @Tags Products
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Product ID"
// @Success 200 {object} product.Product
// @Failure 404 {object} dberrors.ClientError "Product not found"
// @Router /api/v1/products/{id} [get]
func (h *getProductHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid product ID")
	}

	entity, err := h.catalog.GetProduct(c.UserContext(), tenantID(c), id)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entity)
}
