package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/gofiber/fiber/v2"
)

type getProductWithCustomerHandler struct {
	*BaseHandler
	catalog marketplace.Catalog
}

func NewGetProductWithCustomerHandler(base *BaseHandler, catalog marketplace.Catalog) Handler {
	return &getProductWithCustomerHandler{
		BaseHandler: base,
		catalog:     catalog,
	}
}

func (h *getProductWithCustomerHandler) Handle(c *fiber.Ctx) error {
	productID, ok := parseID(c, "id")
	if !ok {
		return badRequest(c, "invalid product ID")
	}
	customerID, ok := parseID(c, "customer_id")
	if !ok {
		return badRequest(c, "invalid customer ID")
	}

	result, err := h.catalog.ReadProductAndCustomer(c.UserContext(), tenantID(c), productID, customerID)
	if err != nil {
		return h.HandleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
