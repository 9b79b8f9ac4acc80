package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/config"
	"github.com/moktrading/tax-service/internal/repository"
)

// CatalogEventType represents the type of catalog event.
type CatalogEventType string

const (
	CatalogEventProductUpdated CatalogEventType = "catalog.product_updated"
	CatalogEventProductDeleted CatalogEventType = "catalog.product_deleted"
)

// CatalogEvent is emitted by the catalog service when a product changes.
type CatalogEvent struct {
	ID        string           `json:"id"`
	Type      CatalogEventType `json:"type"`
	ProductID string           `json:"product_id"`
	Timestamp time.Time        `json:"timestamp"`
}

// KafkaConsumer listens for catalog events and evicts stale products from
// the cache so quotes never price against outdated catalog data for longer
// than one event's latency.
type KafkaConsumer struct {
	reader *kafka.Reader
	cache  repository.ProductCache
	logger *zap.Logger
	stopCh chan struct{}
}

// NewKafkaConsumer creates a new Kafka-based catalog event consumer.
func NewKafkaConsumer(cfg config.KafkaConfig, cache repository.ProductCache, logger *zap.Logger) *KafkaConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.CatalogTopic,
		GroupID:  cfg.ConsumerGroup,
		MinBytes: 1,
		MaxBytes: 10e6,
		MaxWait:  time.Second,
	})

	return &KafkaConsumer{
		reader: reader,
		cache:  cache,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Start begins consuming catalog events. It blocks until the context is
// cancelled or Stop is called.
func (c *KafkaConsumer) Start(ctx context.Context) error {
	c.logger.Info("Starting catalog event consumer")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-c.stopCh:
			c.logger.Info("Catalog event consumer stopped")
			return nil
		default:
			msg, err := c.reader.ReadMessage(ctx)
			if err != nil {
				// Stop closes the reader; the resulting read error is a
				// clean shutdown, not a failure.
				if c.stopping() {
					c.logger.Info("Catalog event consumer stopped")
					return nil
				}
				if ctx.Err() != nil {
					return ctx.Err()
				}
				c.logger.Error("Failed to read message", zap.Error(err))
				continue
			}

			c.handleMessage(ctx, msg)
		}
	}
}

// Stop stops the consumer.
func (c *KafkaConsumer) Stop() {
	close(c.stopCh)
	c.reader.Close()
}

func (c *KafkaConsumer) stopping() bool {
	select {
	case <-c.stopCh:
		return true
	default:
		return false
	}
}

func (c *KafkaConsumer) handleMessage(ctx context.Context, msg kafka.Message) {
	c.logger.Debug("Received message",
		zap.String("topic", msg.Topic),
		zap.Int("partition", msg.Partition),
		zap.Int64("offset", msg.Offset))

	var event CatalogEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	switch event.Type {
	case CatalogEventProductUpdated, CatalogEventProductDeleted:
		c.evict(ctx, &event)
	default:
		c.logger.Debug("Ignoring unknown event type", zap.String("type", string(event.Type)))
	}
}

func (c *KafkaConsumer) evict(ctx context.Context, event *CatalogEvent) {
	if event.ProductID == "" {
		c.logger.Warn("Catalog event without product ID", zap.String("event_id", event.ID))
		return
	}

	if err := c.cache.Delete(ctx, event.ProductID); err != nil {
		c.logger.Error("Failed to evict product from cache",
			zap.String("product_id", event.ProductID),
			zap.Error(err))
		return
	}

	c.logger.Info("Product evicted after catalog event",
		zap.String("product_id", event.ProductID),
		zap.String("event_type", string(event.Type)))
}
