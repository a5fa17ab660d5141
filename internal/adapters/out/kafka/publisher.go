// Package kafka implements the EventPublisher port over Kafka topics.
// One writer per lifecycle topic; payloads are JSON with the shared
// event envelope. Delivery is at least once: the event id is the message
// key so downstream consumers can dedupe.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"delivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Publisher emits lifecycle events to the message broker.
// Safe for concurrent use.
type Publisher struct {
	sessionWriter    *kafka.Writer
	assignmentWriter *kafka.Writer
	parcelWriter     *kafka.Writer
}

// Topics names the broker topics the publisher writes to.
type Topics struct {
	SessionCompleted    string
	AssignmentCompleted string
	ParcelPostponed     string
}

// NewPublisher creates a publisher with one writer per topic.
// Writers are lazy: no connection is made until the first publish.
func NewPublisher(host string, topics Topics) *Publisher {
	return &Publisher{
		sessionWriter:    newWriter(host, topics.SessionCompleted),
		assignmentWriter: newWriter(host, topics.AssignmentCompleted),
		parcelWriter:     newWriter(host, topics.ParcelPostponed),
	}
}

func newWriter(host, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(host),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}

// PublishSessionCompleted emits a session-completed event.
func (p *Publisher) PublishSessionCompleted(ctx context.Context, event ports.SessionCompletedEvent) error {
	return publish(ctx, p.sessionWriter, event.EventID, event)
}

// PublishAssignmentCompleted emits an assignment-completed event.
func (p *Publisher) PublishAssignmentCompleted(ctx context.Context, event ports.AssignmentCompletedEvent) error {
	return publish(ctx, p.assignmentWriter, event.EventID, event)
}

// PublishParcelPostponed emits a parcel-postponed event.
func (p *Publisher) PublishParcelPostponed(ctx context.Context, event ports.ParcelPostponedEvent) error {
	return publish(ctx, p.parcelWriter, event.EventID, event)
}

// Close flushes and closes all topic writers.
func (p *Publisher) Close() error {
	for _, w := range []*kafka.Writer{p.sessionWriter, p.assignmentWriter, p.parcelWriter} {
		if err := w.Close(); err != nil {
			return err
		}
	}
	return nil
}

func publish(ctx context.Context, writer *kafka.Writer, key string, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", writer.Topic, err)
	}

	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
