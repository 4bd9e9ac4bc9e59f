package dependency_container

import (
	"time"

	"github.com/NeuralTrust/Marketplace/pkg/app/marketplace"
	"github.com/NeuralTrust/Marketplace/pkg/app/sequence"
	"github.com/NeuralTrust/Marketplace/pkg/config"
	"github.com/NeuralTrust/Marketplace/pkg/dberrors"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	handlers "github.com/NeuralTrust/Marketplace/pkg/handlers/http"
	"github.com/NeuralTrust/Marketplace/pkg/infra/cache"
	"github.com/NeuralTrust/Marketplace/pkg/infra/database"
	"github.com/NeuralTrust/Marketplace/pkg/infra/destination"
	"github.com/NeuralTrust/Marketplace/pkg/infra/jwt"
	"github.com/NeuralTrust/Marketplace/pkg/infra/matcher"
	"github.com/NeuralTrust/Marketplace/pkg/infra/repository"
	"github.com/NeuralTrust/Marketplace/pkg/middleware"
	"github.com/NeuralTrust/Marketplace/pkg/security"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

type Container struct {
	Cache               cache.Client
	Detector            *security.Detector
	Dispatcher          *dberrors.Dispatcher
	JWTManager          jwt.Manager
	Catalog             marketplace.Catalog
	Orders              marketplace.Orders
	DestinationClient   destination.Client
	MiddlewareTransport middleware.Transport
	HandlerTransport    handlers.HandlerTransport
}

type ContainerDI struct {
	Cfg      *config.Config
	Security config.SecurityConfig
	Logger   *logrus.Logger
	DB       *database.DB
}

func NewContainer(di ContainerDI) (*Container, error) {
	httpClient := &fasthttp.Client{
		ReadTimeout:              10 * time.Second,
		WriteTimeout:             10 * time.Second,
		MaxIdleConnDuration:      120 * time.Second,
		NoDefaultUserAgentHeader: true,
	}

	var cacheInstance cache.Client
	if di.Cfg.Redis.Disabled {
		di.Logger.Info("redis disabled, product cache is off")
		cacheInstance = cache.NewNoopClient()
	} else {
		cacheInstance = cache.NewClient(cache.Config{
			Host:     di.Cfg.Redis.Host,
			Port:     di.Cfg.Redis.Port,
			Password: di.Cfg.Redis.Password,
			DB:       di.Cfg.Redis.DB,
		})
	}

	detector := security.NewDetector(di.Security, matcher.NewEngine(), di.Logger)
	dispatcher := dberrors.NewDispatcher(dberrors.NewMapper(di.Logger))
	jwtManager := jwt.NewJwtManager(&di.Cfg.Server)
	destinationClient := destination.NewClient(di.Cfg.Destinations, httpClient, di.Logger)

	// repository
	productRepository := repository.NewProductRepository(di.DB.DB)
	customerRepository := repository.NewCustomerRepository(di.DB.DB)
	orderRepository := repository.NewOrderRepository(di.DB.DB)

	// service
	orderNumbers := sequence.NewHelper(di.DB.DB, sequence.Options{
		Kind:     di.DB.Kind(),
		Sequence: order.SequenceName,
		Table:    (&order.Order{}).TableName(),
		Field:    order.NumberField,
	})
	catalog := marketplace.NewCatalog(productRepository, customerRepository, cacheInstance, di.Logger)
	orders := marketplace.NewOrders(orderRepository, orderNumbers, di.DB, di.Logger)

	middlewareTransport := middleware.Transport{
		PanicRecoverMiddleware:   middleware.NewPanicRecoverMiddleware(di.Logger),
		MetricsMiddleware:        middleware.NewMetricsMiddleware(di.Logger),
		TenantMiddleware:         middleware.NewTenantMiddleware(di.Logger),
		AuthMiddleware:           middleware.NewAuthMiddleware(di.Logger, jwtManager),
		InjectionGuardMiddleware: middleware.NewInjectionGuardMiddleware(di.Logger, detector),
	}

	base := handlers.NewBaseHandler(di.Logger, dispatcher)
	handlerTransport := handlers.HandlerTransport{
		HealthHandler: handlers.NewHealthHandler(),

		// Product
		CreateProductHandler: handlers.NewCreateProductHandler(base, catalog),
		ListProductsHandler:  handlers.NewListProductsHandler(base, catalog),
		GetProductHandler:    handlers.NewGetProductHandler(base, catalog),
		UpdateProductHandler: handlers.NewUpdateProductHandler(base, catalog),
		DeleteProductHandler: handlers.NewDeleteProductHandler(base, catalog),

		// Customer
		CreateCustomerHandler: handlers.NewCreateCustomerHandler(base, catalog),
		ListCustomersHandler:  handlers.NewListCustomersHandler(base, catalog),
		GetCustomerHandler:    handlers.NewGetCustomerHandler(base, catalog),
		UpdateCustomerHandler: handlers.NewUpdateCustomerHandler(base, catalog),
		DeleteCustomerHandler: handlers.NewDeleteCustomerHandler(base, catalog),

		// Order
		PlaceOrderHandler: handlers.NewPlaceOrderHandler(base, orders),
		ListOrdersHandler: handlers.NewListOrdersHandler(base, orders),
		GetOrderHandler:   handlers.NewGetOrderHandler(base, orders),

		GetProductWithCustomerHandler: handlers.NewGetProductWithCustomerHandler(base, catalog),

		// Procedures
		RunProcedureHandler:     handlers.NewRunProcedureHandler(base, orders),
		CleanupProcedureHandler: handlers.NewCleanupProcedureHandler(base, orders),

		// Current user
		UserRolesHandler: handlers.NewUserRolesHandler(),
		IsAdminHandler:   handlers.NewIsAdminHandler(),

		PostDestinationHandler: handlers.NewPostDestinationHandler(base, destinationClient),
	}

	return &Container{
		Cache:               cacheInstance,
		Detector:            detector,
		Dispatcher:          dispatcher,
		JWTManager:          jwtManager,
		Catalog:             catalog,
		Orders:              orders,
		DestinationClient:   destinationClient,
		MiddlewareTransport: middlewareTransport,
		HandlerTransport:    handlerTransport,
	}, nil
}
