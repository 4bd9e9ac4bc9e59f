package middleware

import (
	"errors"
	"strings"

	"github.com/NeuralTrust/Marketplace/pkg/app/authorization"
	"github.com/NeuralTrust/Marketplace/pkg/common"
	"github.com/NeuralTrust/Marketplace/pkg/infra/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type authMiddleware struct {
	logger     *logrus.Logger
	jwtManager jwt.Manager
}

func NewAuthMiddleware(
	logger *logrus.Logger,
	jwtManager jwt.Manager,
) Middleware {
	return &authMiddleware{
		logger:     logger,
		jwtManager: jwtManager,
	}
}

func (m *authMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(common.AuthorizationHeader)
		if authHeader == "" {
			m.logger.Debug("no authorization header provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Authorization required"})
		}
		if !strings.HasPrefix(authHeader, common.BearerPrefix) {
			m.logger.Debug("invalid authorization header format")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format"})
		}

		tokenString := strings.TrimPrefix(authHeader, common.BearerPrefix)
		if tokenString == "" {
			m.logger.Debug("empty token provided")
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Empty token provided"})
		}

		claims, err := m.jwtManager.DecodeToken(tokenString)
		if err != nil {
			m.logger.WithError(err).Debug("invalid token")
			if errors.Is(err, jwt.ErrExpiredToken) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token expired"})
			}
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
		}

		user := authorization.UserFromClaims(claims)
		tenantID, _ := ctx.Locals(common.TenantContextKey).(string)
		if user.TenantID != "" && tenantID != "" && user.TenantID != tenantID {
			m.logger.WithFields(logrus.Fields{
				"user_tenant":    user.TenantID,
				"request_tenant": tenantID,
			}).Warn("token tenant does not match request tenant")
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Tenant mismatch"})
		}

		ctx.Locals(common.UserContextKey, user)
		return ctx.Next()
	}
}

// UserFromContext returns the authenticated user, or nil.
func UserFromContext(ctx *fiber.Ctx) *authorization.User {
	user, _ := ctx.Locals(common.UserContextKey).(*authorization.User)
	return user
}
