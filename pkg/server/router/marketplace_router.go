package router

import (
	handlers "github.com/NeuralTrust/Marketplace/pkg/handlers/http"
	"github.com/NeuralTrust/Marketplace/pkg/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

const swaggerSpecPath = "./docs/swagger.json"

type marketplaceRouter struct {
	middlewareTransport middleware.Transport
	handlerTransport    handlers.HandlerTransport
}

func NewMarketplaceRouter(
	middlewareTransport middleware.Transport,
	handlerTransport handlers.HandlerTransport,
) ServerRouter {
	return &marketplaceRouter{
		middlewareTransport: middlewareTransport,
		handlerTransport:    handlerTransport,
	}
}

func (r *marketplaceRouter) BuildRoutes(router *fiber.App) error {
	mw := r.middlewareTransport
	h := r.handlerTransport

	router.Use(mw.PanicRecoverMiddleware.Middleware())
	router.Get("/health", h.HealthHandler.Handle)

	router.Static("/swagger.json", swaggerSpecPath)

	router.Get("/docs/*", swagger.New(swagger.Config{
		URL: "/swagger.json",
	}))

	v1 := router.Group("/api/v1",
		mw.MetricsMiddleware.Middleware(),
		mw.TenantMiddleware.Middleware(),
		mw.AuthMiddleware.Middleware(),
		mw.InjectionGuardMiddleware.Middleware(),
	)
	{
		products := v1.Group("/products")
		{
			products.Post("", h.CreateProductHandler.Handle)
			products.Get("", h.ListProductsHandler.Handle)
			products.Get("/:id", h.GetProductHandler.Handle)
			products.Put("/:id", h.UpdateProductHandler.Handle)
			products.Delete("/:id", h.DeleteProductHandler.Handle)
			products.Get("/:id/with-customer/:customer_id", h.GetProductWithCustomerHandler.Handle)
		}

		customers := v1.Group("/customers")
		{
			customers.Post("", h.CreateCustomerHandler.Handle)
			customers.Get("", h.ListCustomersHandler.Handle)
			customers.Get("/:id", h.GetCustomerHandler.Handle)
			customers.Put("/:id", h.UpdateCustomerHandler.Handle)
			customers.Delete("/:id", h.DeleteCustomerHandler.Handle)
		}

		orders := v1.Group("/orders")
		{
			orders.Post("", h.PlaceOrderHandler.Handle)
			orders.Get("", h.ListOrdersHandler.Handle)
			orders.Get("/:id", h.GetOrderHandler.Handle)
		}

		procedures := v1.Group("/procedures")
		{
			procedures.Post("/order", h.RunProcedureHandler.Handle)
			procedures.Delete("/order/:id", h.CleanupProcedureHandler.Handle)
		}

		me := v1.Group("/me")
		{
			me.Get("/roles", h.UserRolesHandler.Handle)
			me.Get("/admin", h.IsAdminHandler.Handle)
		}

		v1.Post("/destinations/:name", h.PostDestinationHandler.Handle)
	}
	return nil
}
