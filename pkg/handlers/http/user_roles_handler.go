package http

import (
	"github.com/NeuralTrust/Marketplace/pkg/app/authorization"
	"github.com/NeuralTrust/Marketplace/pkg/common"
	"github.com/gofiber/fiber/v2"
)

type userRolesHandler struct{}

func NewUserRolesHandler() Handler {
	return &userRolesHandler{}
}

func (h *userRolesHandler) Handle(c *fiber.Ctx) error {
	user, _ := c.Locals(common.UserContextKey).(*authorization.User)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"roles": authorization.UserRoles(user)})
}

type isAdminHandler struct{}

func NewIsAdminHandler() Handler {
	return &isAdminHandler{}
}

func (h *isAdminHandler) Handle(c *fiber.Ctx) error {
	user, _ := c.Locals(common.UserContextKey).(*authorization.User)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"admin": authorization.IsAdmin(user)})
}
