package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/moktrading/tax-service/internal/config"
	"github.com/moktrading/tax-service/internal/metrics"
	"github.com/moktrading/tax-service/internal/tax"
)

// EventType represents the type of tax event.
type EventType string

const (
	EventTypeQuoteCalculated EventType = "tax.quote_calculated"
)

const publishMaxRetries = 3

// QuoteEvent is emitted after every cart quote so downstream reporting and
// compliance consumers see the same figures the customer saw.
type QuoteEvent struct {
	ID           string          `json:"id"`
	Type         EventType       `json:"type"`
	Jurisdiction tax.Code        `json:"jurisdiction"`
	Summary      json.RawMessage `json:"summary"`
	Timestamp    time.Time       `json:"timestamp"`
}

// QuotePublisher publishes quote events.
type QuotePublisher interface {
	PublishQuoteCalculated(ctx context.Context, summary tax.CartTaxSummary) error
	Close() error
}

// KafkaPublisher publishes tax events to Kafka.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

var _ QuotePublisher = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a new Kafka-based event publisher.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *zap.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.QuotesTopic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

// PublishQuoteCalculated publishes a quote calculated event. Transient
// broker errors are retried with exponential backoff; quoting itself never
// fails on publish errors, callers log and move on.
func (p *KafkaPublisher) PublishQuoteCalculated(ctx context.Context, summary tax.CartTaxSummary) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	event := QuoteEvent{
		ID:           uuid.NewString(),
		Type:         EventTypeQuoteCalculated,
		Jurisdiction: summary.Jurisdiction,
		Summary:      payload,
		Timestamp:    time.Now().UTC(),
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.Jurisdiction),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(event.ID)},
		},
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), publishMaxRetries), ctx)

	err = backoff.Retry(func() error {
		return p.writer.WriteMessages(ctx, msg)
	}, policy)
	if err != nil {
		p.logger.Error("Failed to publish event",
			zap.String("event_id", event.ID),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return err
	}

	metrics.EventsPublished.Inc()
	p.logger.Info("Event published",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.String("jurisdiction", string(event.Jurisdiction)))

	return nil
}

// Close closes the Kafka writer.
func (p *KafkaPublisher) Close() error {
	p.logger.Info("Closing Kafka publisher")
	return p.writer.Close()
}

// NopPublisher discards events; used when event publishing is disabled and
// in tests.
type NopPublisher struct{}

func (NopPublisher) PublishQuoteCalculated(context.Context, tax.CartTaxSummary) error { return nil }
func (NopPublisher) Close() error                                                     { return nil }
