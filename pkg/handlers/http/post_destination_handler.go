package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/infra/destination"
	"github.com/gofiber/fiber/v2"
)

type postDestinationHandler struct {
	*BaseHandler
	client destination.Client
}

func NewPostDestinationHandler(base *BaseHandler, client destination.Client) Handler {
	return &postDestinationHandler{
		BaseHandler: base,
		client:      client,
	}
}

// Handle @Summary Forward a JSON payload to a configured destination
// @Tags Destinations
// @Accept json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param name path string true "Destination name"
// @Param path query string false "Path on the destination"
// @Success 202 "Payload delivered"
// @Failure 404 {object} map[string]interface{} "Unknown destination"
// @Failure 502 {object} map[string]interface{} "Destination rejected the payload"
// @Router /api/v1/destinations/{name} [post]
func (h *postDestinationHandler) Handle(c *fiber.Ctx) error {
	var payload any
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.client.Post(c.UserContext(), c.Params("name"), c.Query("path"), payload); err != nil {
		return h.HandleError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}
