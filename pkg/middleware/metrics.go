package middleware

import (
	"errors"
	"strconv"
	"time"

	"github.com/NeuralTrust/Marketplace/pkg/infra/prometheus"
	"github.com/NeuralTrust/Marketplace/pkg/security"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type metricsMiddleware struct {
	logger *logrus.Logger
}

func NewMetricsMiddleware(logger *logrus.Logger) Middleware {
	return &metricsMiddleware{logger: logger}
}

func (m *metricsMiddleware) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		startTime := time.Now()

		err := c.Next()

		tenantID := TenantFromContext(c)
		status := responseStatus(c, err)
		prometheus.RequestTotal.WithLabelValues(tenantID, c.Method(), strconv.Itoa(status)).Inc()
		prometheus.RequestLatency.WithLabelValues(tenantID).
			Observe(float64(time.Since(startTime).Milliseconds()))

		m.logger.WithFields(logrus.Fields{
			"method":  c.Method(),
			"path":    c.Path(),
			"status":  status,
			"elapsed": time.Since(startTime).String(),
		}).Debug("request served")

		return err
	}
}

// responseStatus predicts the status the error handler will write, since
// it runs after the middleware chain has returned.
func responseStatus(c *fiber.Ctx, err error) int {
	if err == nil {
		return c.Response().StatusCode()
	}
	if secErr, ok := security.IsSecurityError(err); ok {
		return secErr.StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
