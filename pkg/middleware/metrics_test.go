package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/NeuralTrust/Marketplace/pkg/common"
	"github.com/NeuralTrust/Marketplace/pkg/infra/prometheus"
	"github.com/NeuralTrust/Marketplace/pkg/middleware"
	"github.com/NeuralTrust/Marketplace/pkg/security"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_CountsByStatus(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	app := fiber.New()
	app.Use(middleware.NewMetricsMiddleware(logger).Middleware())
	app.Use(middleware.NewTenantMiddleware(logger).Middleware())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/rejected", func(c *fiber.Ctx) error { return security.NewError(security.KindXSS) })
	app.Get("/broken", func(c *fiber.Ctx) error { return errors.New("boom") })

	const tenant = "metrics-tenant"
	for _, path := range []string{"/ok", "/rejected", "/broken"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set(common.TenantIDHeader, tenant)
		_, err := app.Test(req)
		require.NoError(t, err)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(prometheus.RequestTotal.WithLabelValues(tenant, "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(prometheus.RequestTotal.WithLabelValues(tenant, "GET", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(prometheus.RequestTotal.WithLabelValues(tenant, "GET", "500")))
}

func TestPanicRecoverMiddleware(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	app := fiber.New()
	app.Use(middleware.NewPanicRecoverMiddleware(logger).Middleware())
	app.Get("/panic", func(c *fiber.Ctx) error { panic("kaboom") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "HTTP server panic recovered", hook.LastEntry().Message)
}
