// Package events publishes domain events to Kafka. Publishing is
// best-effort and mirrors the mail dispatcher: a broker failure is logged
// by the caller and never fails the enclosing request.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"tripora/pkg/logger"
)

const (
	TypeBookingCreated = "booking.created"
	TypeInquiryCreated = "inquiry.created"
)

// Envelope is the wire format for every event on the topic.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type Producer struct {
	writer *kafka.Writer
	log    *logger.Logger
}

// NewProducer returns nil when no brokers are configured; a nil producer
// silently drops events, keeping the API usable without Kafka.
func NewProducer(brokers []string, topic string, log *logger.Logger) *Producer {
	if len(brokers) == 0 {
		log.Info("Kafka brokers not configured, domain events disabled")
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{}, // Hash by key for per-record ordering
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
		ErrorLogger:  kafka.LoggerFunc(func(msg string, args ...any) { log.Error(fmt.Sprintf(msg, args...)) }),
	}

	log.Info("Kafka event producer initialized", "topic", topic, "brokers", brokers)
	return &Producer{
		writer: writer,
		log:    log,
	}
}

// Publish emits one event keyed by the record id.
func (p *Producer) Publish(ctx context.Context, eventType, key string, payload any) error {
	if p == nil {
		return nil
	}

	value, err := json.Marshal(Envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", eventType, err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
