package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type listProductsHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewListProductsHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &listProductsHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Retrieve all Products
// @Tags Products
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param offset query int false "Offset"
// @Param limit query int false "Limit"
// @Success 200 {array} product.Product
// @Router /api/v1/products [get]
func (h *listProductsHandler) Handle(c *fiber.Ctx) error {
	offset, limit := pagination(c)

	entities, err := h.catalog.ListProducts(c.UserContext(), tenantID(c), offset, limit)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(entities)
}
