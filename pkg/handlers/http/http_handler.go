package http

import "github.com/gofiber/fiber/v2"

type Handler interface {
	Handle(ctx *fiber.Ctx) error
}

type HandlerTransport struct {
	HealthHandler Handler

	// Product
	CreateProductHandler Handler
	ListProductsHandler  Handler
	GetProductHandler    Handler
	UpdateProductHandler Handler
	DeleteProductHandler Handler

	// Customer
	CreateCustomerHandler Handler
	ListCustomersHandler  Handler
	GetCustomerHandler    Handler
	UpdateCustomerHandler Handler
	DeleteCustomerHandler Handler

	// Order
	PlaceOrderHandler Handler
	ListOrdersHandler Handler
	GetOrderHandler   Handler

	GetProductWithCustomerHandler Handler

	// Procedures
	RunProcedureHandler     Handler
	CleanupProcedureHandler Handler

	// Current user
	UserRolesHandler Handler
	IsAdminHandler   Handler

	PostDestinationHandler Handler
}
