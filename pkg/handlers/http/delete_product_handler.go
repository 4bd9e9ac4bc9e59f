package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type deleteProductHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewDeleteProductHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &deleteProductHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

// Handle @Summary Delete a Product
// @Tags Products
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param id path string true "Product ID"
// @Success 204 "Product deleted successfully"
// @Failure 404 {object} dberrors.ClientError "Product not found"
// @Router /api/v1/products/{id} [delete]
func (h *deleteProductHandler) Handle(c *fiber.Ctx) error {
	id, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid product ID")
	}

	if err := h.catalog.DeleteProduct(c.UserContext(), tenantID(c), id); err != nil {
		return h.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
