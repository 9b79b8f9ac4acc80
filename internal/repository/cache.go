package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/config"
	"github.com/moktrading/tax-service/internal/metrics"
	"github.com/moktrading/tax-service/internal/models"
)

const (
	productKeyPrefix = "product:"
	defaultCacheTTL  = 5 * time.Minute
)

// RedisProductCache caches catalog products in Redis. Entries expire after
// the configured TTL and are invalidated early by catalog events.
type RedisProductCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisProductCache creates a new Redis-based product cache.
func NewRedisProductCache(cfg config.RedisConfig, logger *zap.Logger) *RedisProductCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &RedisProductCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get retrieves a product from cache. A miss returns (nil, nil).
func (c *RedisProductCache) Get(ctx context.Context, id string) (*models.Product, error) {
	key := productKeyPrefix + id

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.CacheMisses.Inc()
		c.logger.Debug("Cache miss", zap.String("product_id", id))
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Cache get error",
			zap.String("product_id", id),
			zap.Error(err))
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}

	metrics.CacheHits.Inc()
	c.logger.Debug("Cache hit", zap.String("product_id", id))
	return &product, nil
}

// Set stores a product in cache.
func (c *RedisProductCache) Set(ctx context.Context, product *models.Product) error {
	key := productKeyPrefix + product.ID

	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Error("Cache set error",
			zap.String("product_id", product.ID),
			zap.Error(err))
		return err
	}

	c.logger.Debug("Product cached",
		zap.String("product_id", product.ID),
		zap.String("ttl", c.ttl.String()))
	return nil
}

// Delete removes a product from cache.
func (c *RedisProductCache) Delete(ctx context.Context, id string) error {
	key := productKeyPrefix + id

	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Error("Cache delete error",
			zap.String("product_id", id),
			zap.Error(err))
		return err
	}

	c.logger.Debug("Product evicted from cache", zap.String("product_id", id))
	return nil
}

// Ping checks Redis connectivity for readiness probes.
func (c *RedisProductCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (c *RedisProductCache) Close() error {
	return c.client.Close()
}
