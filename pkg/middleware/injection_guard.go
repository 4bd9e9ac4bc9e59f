package middleware

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fastjson"
)

type InjectionDetector interface {
	DetectInjections(ctx context.Context, value any) error
}

type injectionGuardMiddleware struct {
	logger   *logrus.Logger
	detector InjectionDetector
	parsers  fastjson.ParserPool
}

// NewInjectionGuardMiddleware rejects a request as soon as one of its
// top-level payload values is flagged by the detector. The handler never
// runs for a rejected request.
func NewInjectionGuardMiddleware(logger *logrus.Logger, detector InjectionDetector) Middleware {
	return &injectionGuardMiddleware{
		logger:   logger,
		detector: detector,
	}
}

func (m *injectionGuardMiddleware) Middleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		for _, value := range m.payload(ctx) {
			if err := m.detector.DetectInjections(ctx.UserContext(), value); err != nil {
				m.logger.WithFields(logrus.Fields{
					"path":   ctx.Path(),
					"method": ctx.Method(),
				}).WithError(err).Warn("request rejected by injection guard")
				return err
			}
		}
		return ctx.Next()
	}
}

// payload lists the top-level fields of a JSON object body in wire order.
// Any other non-empty body is checked whole; only a request without a body
// falls back to the query arguments.
func (m *injectionGuardMiddleware) payload(ctx *fiber.Ctx) []any {
	if body := bytes.TrimSpace(ctx.Body()); len(body) > 0 {
		p := m.parsers.Get()
		defer m.parsers.Put(p)

		v, err := p.ParseBytes(body)
		if err != nil {
			return []any{string(body)}
		}
		if v.Type() != fastjson.TypeObject {
			return []any{fromJSON(v)}
		}
		obj, _ := v.Object()
		values := make([]any, 0, obj.Len())
		obj.Visit(func(_ []byte, field *fastjson.Value) {
			values = append(values, fromJSON(field))
		})
		return values
	}

	var values []any
	ctx.Context().QueryArgs().VisitAll(func(_, value []byte) {
		values = append(values, string(value))
	})
	return values
}

// fromJSON copies the value out of the parser arena. Nested objects and
// arrays stay raw and are checked whole.
func fromJSON(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeString:
		return string(v.GetStringBytes())
	case fastjson.TypeNumber:
		return json.Number(v.String())
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	case fastjson.TypeNull:
		return nil
	default:
		return json.RawMessage(v.MarshalTo(nil))
	}
}
