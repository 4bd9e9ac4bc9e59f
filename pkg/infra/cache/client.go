package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/Marketplace/pkg/domain/product"
	"github.com/go-redis/redis/v8"
)

const (
	ProductKeyPattern = "tenant:%s:product:%s"

	defaultTTL     = 5 * time.Minute
	localTTL       = 30 * time.Second
	requestTimeout = 2 * time.Second
)

var ErrCacheMiss = errors.New("cache miss")

type Client interface {
	GetProduct(ctx context.Context, tenantID, id string) (*product.Product, error)
	SaveProduct(ctx context.Context, p *product.Product) error
	DeleteProduct(ctx context.Context, tenantID, id string) error
}

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type client struct {
	redis *redis.Client
	local *TTLMap
	ttl   time.Duration
}

func NewClient(cfg Config) Client {
	return NewClientWithRedis(redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	}), defaultTTL)
}

func NewClientWithRedis(rc *redis.Client, ttl time.Duration) Client {
	return &client{
		redis: rc,
		local: NewTTLMap(localTTL),
		ttl:   ttl,
	}
}

func productKey(tenantID, id string) string {
	return fmt.Sprintf(ProductKeyPattern, tenantID, id)
}

func (c *client) GetProduct(ctx context.Context, tenantID, id string) (*product.Product, error) {
	key := productKey(tenantID, id)
	if value, ok := c.local.Get(key); ok {
		if p, ok := value.(*product.Product); ok {
			return p, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	raw, err := c.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("read product cache: %w", err)
	}

	p := new(product.Product)
	if err := json.Unmarshal([]byte(raw), p); err != nil {
		return nil, fmt.Errorf("decode cached product: %w", err)
	}
	c.local.Set(key, p)
	return p, nil
}

func (c *client) SaveProduct(ctx context.Context, p *product.Product) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	key := productKey(p.TenantID, p.ID.String())

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	if err := c.redis.Set(ctx, key, string(payload), c.ttl).Err(); err != nil {
		return fmt.Errorf("write product cache: %w", err)
	}
	c.local.Set(key, p)
	return nil
}

func (c *client) DeleteProduct(ctx context.Context, tenantID, id string) error {
	key := productKey(tenantID, id)
	c.local.Delete(key)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	if err := c.redis.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("invalidate product cache: %w", err)
	}
	return nil
}
