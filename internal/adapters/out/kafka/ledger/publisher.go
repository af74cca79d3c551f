// Package ledger notifies the payment ledger when a delivery reaches a
// terminal status. Events are JSON messages keyed by source reference so all
// events of one order land on the same partition.
package ledger

import (
	"context"
	"encoding/json"
	"time"

	"deliveryscheduler/internal/core/domain/model/source"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

const (
	EventDeliveryCompleted = "delivery.completed"
	EventDeliveryCancelled = "delivery.cancelled"
)

// Event is the message published for the ledger.
type Event struct {
	Type       string    `json:"type"`
	SourceKind string    `json:"source_kind"`
	SourceID   string    `json:"source_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newEvent(eventType string, ref source.Ref, at time.Time) Event {
	return Event{
		Type:       eventType,
		SourceKind: ref.Kind.String(),
		SourceID:   ref.ID,
		OccurredAt: at.UTC(),
	}
}

// Writer is the subset of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher implements ports.PaymentLedger on top of a Kafka topic.
type KafkaPublisher struct {
	writer Writer
	now    func() time.Time
}

// NewKafkaPublisher writes to topic on brokers.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	})
}

// NewKafkaPublisherWithWriter allows injecting a test writer.
func NewKafkaPublisherWithWriter(w Writer) *KafkaPublisher {
	return &KafkaPublisher{writer: w, now: time.Now}
}

func (p *KafkaPublisher) MarkCompleted(ctx context.Context, ref source.Ref) error {
	return p.publish(ctx, newEvent(EventDeliveryCompleted, ref, p.now()))
}

func (p *KafkaPublisher) MarkCancelled(ctx context.Context, ref source.Ref) error {
	return p.publish(ctx, newEvent(EventDeliveryCancelled, ref, p.now()))
}

func (p *KafkaPublisher) publish(ctx context.Context, event Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal ledger event")
	}

	msg := kafka.Message{
		Key:   []byte(event.SourceKind + "/" + event.SourceID),
		Value: value,
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return errors.Wrapf(err, "failed to publish %s", event.Type)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// LogLedger stands in for the ledger when Kafka is disabled.
type LogLedger struct {
	logger zerolog.Logger
}

func NewLogLedger(logger zerolog.Logger) *LogLedger {
	return &LogLedger{logger: logger.With().Str("component", "payment-ledger").Logger()}
}

func (l *LogLedger) MarkCompleted(_ context.Context, ref source.Ref) error {
	l.logger.Info().Str("event", EventDeliveryCompleted).Str("source", ref.String()).Msg("ledger notification")
	return nil
}

func (l *LogLedger) MarkCancelled(_ context.Context, ref source.Ref) error {
	l.logger.Info().Str("event", EventDeliveryCancelled).Str("source", ref.String()).Msg("ledger notification")
	return nil
}
