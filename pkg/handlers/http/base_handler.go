package http

import (
	"errors"
	"strconv"

	"github.com/NeuralTrust/Marketplace/pkg/common"
	"github.com/NeuralTrust/Marketplace/pkg/dberrors"
	"github.com/NeuralTrust/Marketplace/pkg/domain"
	"github.com/NeuralTrust/Marketplace/pkg/infra/destination"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

type BaseHandler struct {
	logger     *logrus.Logger
	dispatcher *dberrors.Dispatcher
}

func NewBaseHandler(logger *logrus.Logger, dispatcher *dberrors.Dispatcher) *BaseHandler {
	return &BaseHandler{
		logger:     logger,
		dispatcher: dispatcher,
	}
}

// fiberRequestContext answers a mapped database error on the fiber response.
type fiberRequestContext struct {
	c *fiber.Ctx
}

func (r *fiberRequestContext) Terminate(code int, message string, detail dberrors.LogInfo) error {
	return r.c.Status(code).JSON(&dberrors.ClientError{
		Code:    code,
		Message: message,
		Detail:  detail,
	})
}

// HandleError sends database errors through the dispatcher and answers the
// known domain errors. Anything else goes back to the fiber error handler.
func (h *BaseHandler) HandleError(c *fiber.Ctx, err error) error {
	err = h.dispatcher.HandleError(&fiberRequestContext{c: c}, err)
	if err == nil {
		return nil
	}

	var statusErr *destination.StatusError
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrTenantRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrStockUpdateFailed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, destination.ErrUnknownDestination):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "destination unavailable"})
	case errors.As(err, &statusErr):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	h.logger.WithError(err).WithField("path", c.Path()).Error("request failed")
	return err
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

func tenantID(c *fiber.Ctx) string {
	id, _ := c.Locals(common.TenantContextKey).(string)
	return id
}

func parseID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	return id, err == nil
}

func pagination(c *fiber.Ctx) (offset, limit int) {
	limit = common.DefaultPageLimit
	if offsetStr := c.Query("offset"); offsetStr != "" {
		if val, err := strconv.Atoi(offsetStr); err == nil && val >= 0 {
			offset = val
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil && val > 0 && val <= common.MaxPageLimit {
			limit = val
		}
	}
	return offset, limit
}
