package middleware

import (
	"context"
	"strings"

	"github.com/NeuralTrust/Marketplace/pkg/common"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type tenantMiddleware struct {
	logger *logrus.Logger
}

func NewTenantMiddleware(logger *logrus.Logger) Middleware {
	return &tenantMiddleware{logger: logger}
}

func (m *tenantMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tenantID := strings.TrimSpace(ctx.Get(common.TenantIDHeader))
		if tenantID == "" {
			m.logger.WithField("path", ctx.Path()).Debug("request without tenant header")
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "tenant id is required"})
		}

		ctx.Locals(common.TenantContextKey, tenantID)
		ctx.SetUserContext(context.WithValue(ctx.UserContext(), common.TenantContextKey, tenantID))
		return ctx.Next()
	}
}

func TenantFromContext(ctx *fiber.Ctx) string {
	tenantID, _ := ctx.Locals(common.TenantContextKey).(string)
	return tenantID
}
