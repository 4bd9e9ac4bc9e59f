package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NeuralTrust/Marketplace/pkg/app/authorization"
	"github.com/NeuralTrust/Marketplace/pkg/common"
	"github.com/NeuralTrust/Marketplace/pkg/dberrors"
	"github.com/NeuralTrust/Marketplace/pkg/domain"
	"github.com/NeuralTrust/Marketplace/pkg/domain/order"
	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/NeuralTrust/Marketplace/pkg/infra/destination"
	"github.com/NeuralTrust/Marketplace/pkg/version"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const tenant = "tenant-a"

func newTestBase() (*BaseHandler, *logtest.Hook) {
	logger, hook := logtest.NewNullLogger()
	return NewBaseHandler(logger, dberrors.NewDispatcher(dberrors.NewMapper(logger))), hook
}

func newTestApp(user *authorization.User) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(common.TenantContextKey, tenant)
		if user != nil {
			c.Locals(common.UserContextKey, user)
		}
		return c.Next()
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func TestGetProduct_Found(t *testing.T) {
	base, _ := newTestBase()
	catalog := new(catalogMock)
	id := uuid.New()
	catalog.On("GetProduct", mock.Anything, tenant, id).Return(&product.Product{ID: id, Name: "chair"}, nil)
	app := newTestApp(nil)
	app.Get("/products/:id", NewGetProductHandler(base, catalog).Handle)

	resp, body := doRequest(t, app, http.MethodGet, "/products/"+id.String(), "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got product.Product
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "chair", got.Name)
}

func TestGetProduct_InvalidID(t *testing.T) {
	base, _ := newTestBase()
	app := newTestApp(nil)
	app.Get("/products/:id", NewGetProductHandler(base, new(catalogMock)).Handle)

	resp, _ := doRequest(t, app, http.MethodGet, "/products/not-a-uuid", "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetProduct_NotFoundIsMapped(t *testing.T) {
	base, hook := newTestBase()
	catalog := new(catalogMock)
	id := uuid.New()
	notFound := domain.NewNotFoundError("product", id, dberrors.NotFound("record not found", nil))
	catalog.On("GetProduct", mock.Anything, tenant, id).Return(nil, notFound)
	app := newTestApp(nil)
	app.Get("/products/:id", NewGetProductHandler(base, catalog).Handle)

	resp, body := doRequest(t, app, http.MethodGet, "/products/"+id.String(), "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var ce dberrors.ClientError
	require.NoError(t, json.Unmarshal(body, &ce))
	assert.Equal(t, fiber.StatusNotFound, ce.Code)
	assert.True(t, strings.HasPrefix(ce.Message, "Resource not found | Log ID: db-error-"))
	assert.NotContains(t, ce.Message, "record not found")
	assert.Equal(t, ce.Detail.LogID, hook.LastEntry().Data["logId"])
}

func TestCreateProduct_Duplicate(t *testing.T) {
	base, _ := newTestBase()
	catalog := new(catalogMock)
	catalog.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p *product.Product) bool {
		return p.TenantID == tenant && p.Name == "chair"
	})).Return(dberrors.NewDriverError(dberrors.CodeUniqueViolation, "23505", "dup", nil))
	app := newTestApp(nil)
	app.Post("/products", NewCreateProductHandler(base, catalog).Handle)

	resp, body := doRequest(t, app, http.MethodPost, "/products", `{"name":"chair","price":10}`)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Contains(t, string(body), "Duplicate key found")
}

func TestCreateProduct_Validation(t *testing.T) {
	base, _ := newTestBase()
	catalog := new(catalogMock)
	app := newTestApp(nil)
	app.Post("/products", NewCreateProductHandler(base, catalog).Handle)

	resp, _ := doRequest(t, app, http.MethodPost, "/products", `{"price":10}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	catalog.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
}

func TestListProducts_Pagination(t *testing.T) {
	base, _ := newTestBase()
	catalog := new(catalogMock)
	catalog.On("ListProducts", mock.Anything, tenant, 20, 10).Return([]product.Product{}, nil)
	app := newTestApp(nil)
	app.Get("/products", NewListProductsHandler(base, catalog).Handle)

	resp, _ := doRequest(t, app, http.MethodGet, "/products?offset=20&limit=10", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	catalog.AssertExpectations(t)
}

func TestDeleteCustomer(t *testing.T) {
	base, _ := newTestBase()
	catalog := new(catalogMock)
	id := uuid.New()
	catalog.On("DeleteCustomer", mock.Anything, tenant, id).Return(nil)
	app := newTestApp(nil)
	app.Delete("/customers/:id", NewDeleteCustomerHandler(base, catalog).Handle)

	resp, _ := doRequest(t, app, http.MethodDelete, "/customers/"+id.String(), "")

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestPlaceOrder_DomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"invalid input", fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput), fiber.StatusBadRequest},
		{"stock", domain.ErrStockUpdateFailed, fiber.StatusConflict},
		{"foreign key", dberrors.NewDriverError(dberrors.CodeForeignKeyMismatch, "23503", "fk", nil), fiber.StatusBadRequest},
		{"unexpected", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, _ := newTestBase()
			orders := new(ordersMock)
			orders.On("PlaceOrder", mock.Anything, tenant, mock.Anything).Return(nil, tt.err)
			app := newTestApp(nil)
			app.Post("/orders", NewPlaceOrderHandler(base, orders).Handle)

			resp, _ := doRequest(t, app, http.MethodPost, "/orders", `{"quantity":0}`)

			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestPlaceOrder_Created(t *testing.T) {
	base, _ := newTestBase()
	orders := new(ordersMock)
	orders.On("PlaceOrder", mock.Anything, tenant, map[string]any{"quantity": float64(2)}).
		Return(&order.Order{OrderNumber: 1001, Quantity: 2}, nil)
	app := newTestApp(nil)
	app.Post("/orders", NewPlaceOrderHandler(base, orders).Handle)

	resp, body := doRequest(t, app, http.MethodPost, "/orders", `{"quantity":2}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Contains(t, string(body), `"order_number":1001`)
}

func TestRunProcedure_NoStockMapsToNotFound(t *testing.T) {
	base, _ := newTestBase()
	orders := new(ordersMock)
	noStock := dberrors.NewDriverError(dberrors.CodeNoData, dberrors.StateNoRows, "stock update failed", nil)
	orders.On("RunStoredProcedure", mock.Anything, tenant, mock.Anything).Return(nil, noStock)
	app := newTestApp(nil)
	app.Post("/procedures/order", NewRunProcedureHandler(base, orders).Handle)

	resp, body := doRequest(t, app, http.MethodPost, "/procedures/order", `{"quantity":5}`)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, string(body), `"logId":"db-error-`)
}

func TestCleanupProcedure(t *testing.T) {
	base, _ := newTestBase()
	orders := new(ordersMock)
	id := uuid.New()
	orders.On("CleanupProcedureData", mock.Anything, tenant, id).Return(nil)
	app := newTestApp(nil)
	app.Delete("/procedures/order/:id", NewCleanupProcedureHandler(base, orders).Handle)

	resp, _ := doRequest(t, app, http.MethodDelete, "/procedures/order/"+id.String(), "")

	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestUserRolesAndAdmin(t *testing.T) {
	user := &authorization.User{ID: "u1", Roles: map[string]any{
		authorization.RoleAdmin:           float64(1),
		authorization.RoleSalesManager:    true,
		authorization.RoleStoreSupervisor: false,
	}}
	app := newTestApp(user)
	app.Get("/me/roles", NewUserRolesHandler().Handle)
	app.Get("/me/admin", NewIsAdminHandler().Handle)

	_, body := doRequest(t, app, http.MethodGet, "/me/roles", "")
	assert.JSONEq(t, `{"roles":["Admin","SalesManager"]}`, string(body))

	_, body = doRequest(t, app, http.MethodGet, "/me/admin", "")
	assert.JSONEq(t, `{"admin":true}`, string(body))
}

func TestUserRoles_Anonymous(t *testing.T) {
	app := newTestApp(nil)
	app.Get("/me/roles", NewUserRolesHandler().Handle)
	app.Get("/me/admin", NewIsAdminHandler().Handle)

	_, body := doRequest(t, app, http.MethodGet, "/me/roles", "")
	assert.JSONEq(t, `{"roles":[]}`, string(body))

	_, body = doRequest(t, app, http.MethodGet, "/me/admin", "")
	assert.JSONEq(t, `{"admin":false}`, string(body))
}

func TestPostDestination(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"delivered", nil, fiber.StatusAccepted},
		{"unknown", fmt.Errorf("%w: crm", destination.ErrUnknownDestination), fiber.StatusNotFound},
		{"rejected", &destination.StatusError{Destination: "crm", StatusCode: 500}, fiber.StatusBadGateway},
		{"breaker open", fmt.Errorf("breaker (crm): %w", gobreaker.ErrOpenState), fiber.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, _ := newTestBase()
			client := new(destinationMock)
			client.On("Post", mock.Anything, "crm", "/leads", map[string]any{"name": "x"}).Return(tt.err)
			app := newTestApp(nil)
			app.Post("/destinations/:name", NewPostDestinationHandler(base, client).Handle)

			resp, _ := doRequest(t, app, http.MethodPost, "/destinations/crm?path=/leads", `{"name":"x"}`)

			assert.Equal(t, tt.status, resp.StatusCode)
			client.AssertExpectations(t)
		})
	}
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/health", NewHealthHandler().Handle)

	resp, body := doRequest(t, app, http.MethodGet, "/health", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got struct {
		Status  string       `json:"status"`
		Version version.Info `json:"version"`
	}
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "ok", got.Status)
	assert.Equal(t, version.AppName, got.Version.AppName)
}
