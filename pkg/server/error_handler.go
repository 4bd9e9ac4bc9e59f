package server

import (
	"errors"

	"github.com/NeuralTrust/Marketplace/pkg/security"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewErrorHandler renders errors that reached fiber unanswered. Rejected
// payloads become 400s; internal details never reach the client.
func NewErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if secErr, ok := security.IsSecurityError(err); ok {
			switch secErr.Kind {
			case security.KindXSS, security.KindSQL, security.KindNoSQL:
				return c.Status(secErr.StatusCode()).JSON(fiber.Map{
					"error": secErr.Error(),
					"kind":  secErr.Kind.String(),
				})
			}
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		logger.WithError(err).WithFields(logrus.Fields{
			"path":   c.Path(),
			"method": c.Method(),
		}).Error("unhandled request error")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
