package destination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/NeuralTrust/Marketplace/pkg/config"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"
)

const (
	breakerOpenTimeout = 30 * time.Second
	breakerMaxFailures = 5
)

var ErrUnknownDestination = errors.New("unknown destination")

// StatusError is returned when a destination answers outside 2xx.
type StatusError struct {
	Destination string
	StatusCode  int
	Body        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("destination %s responded with status %d", e.Destination, e.StatusCode)
}

type Client interface {
	Post(ctx context.Context, destination, path string, payload any) error
}

type client struct {
	destinations config.DestinationsConfig
	http         *fasthttp.Client
	logger       *logrus.Logger
	breakers     sync.Map
}

func NewClient(destinations config.DestinationsConfig, httpClient *fasthttp.Client, logger *logrus.Logger) Client {
	return &client{
		destinations: destinations,
		http:         httpClient,
		logger:       logger,
	}
}

// Post sends payload as JSON to path on the named destination.
func (c *client) Post(ctx context.Context, name, path string, payload any) error {
	dest, ok := c.destinations.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDestination, name)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(joinURL(dest.BaseURL, path))
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("Cache-Control", "no-cache")
	for k, v := range dest.Headers {
		req.Header.Set(k, v)
	}
	req.SetBody(body)

	deadline := time.Now().Add(dest.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	err = c.breaker(dest.Name).Execute(func() error {
		if err := c.http.DoDeadline(req, resp, deadline); err != nil {
			return err
		}
		if code := resp.StatusCode(); code < 200 || code >= 300 {
			return &StatusError{Destination: dest.Name, StatusCode: code, Body: string(resp.Body())}
		}
		return nil
	})
	if err != nil {
		c.logger.WithError(err).WithField("destination", dest.Name).Error("post to destination failed")
		return err
	}
	return nil
}

func (c *client) breaker(name string) *circuitBreaker {
	if b, ok := c.breakers.Load(name); ok {
		return b.(*circuitBreaker)
	}
	b, _ := c.breakers.LoadOrStore(name, newCircuitBreaker(name, breakerOpenTimeout, breakerMaxFailures))
	return b.(*circuitBreaker)
}

func joinURL(base, path string) string {
	if path == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
