package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/config"
	"github.com/segmentio/kafka-go"
)

const EventTypeHeader = "event-type"

// Sink delivers events to the secondary store.
type Sink interface {
	PublishOrder(ctx context.Context, order OrderSnapshot) error
	PublishStatus(ctx context.Context, change StatusChange) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaSink struct {
	writer messageWriter
}

// NewKafkaSink publishes events as JSON keyed by order id,
// so all events of one order land in the same partition.
func NewKafkaSink(cfg config.Kafka) *kafkaSink {
	return &kafkaSink{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			BatchTimeout:           cfg.BatchTimeout,
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
	}
}

func (s *kafkaSink) PublishOrder(ctx context.Context, order OrderSnapshot) error {
	return s.write(ctx, EventOrderCreated, order.ID, order)
}

func (s *kafkaSink) PublishStatus(ctx context.Context, change StatusChange) error {
	return s.write(ctx, EventStatusChanged, change.OrderID, change)
}

func (s *kafkaSink) write(ctx context.Context, event EventType, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	msg := kafka.Message{
		Key:     []byte(key),
		Value:   value,
		Time:    time.Now(),
		Headers: []kafka.Header{{Key: EventTypeHeader, Value: []byte(event)}},
	}
	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write %s event: %w", event, err)
	}
	return nil
}

func (s *kafkaSink) Close() error {
	return s.writer.Close()
}

// NopSink discards events. Used when mirroring is disabled.
type NopSink struct{}

func (NopSink) PublishOrder(context.Context, OrderSnapshot) error { return nil }
func (NopSink) PublishStatus(context.Context, StatusChange) error { return nil }
func (NopSink) Close() error                                      { return nil }
