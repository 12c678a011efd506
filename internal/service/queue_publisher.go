// Package service provides functions to publish domain events to RabbitMQ.
// Errors are returned so callers can log and ignore them without
// interrupting the main request flow.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/aspire-counter-api/internal/queue"
)

// CounterPublisher publishes counter events to the counter.incremented queue.
type CounterPublisher interface {
	PublishCounterIncremented(ctx context.Context, ev q.CounterIncrementedEvent) error
}

// NewCounterPublisher returns a RabbitMQ publisher for url, or a no-op
// publisher when url is empty.
func NewCounterPublisher(url string) CounterPublisher {
	if url == "" {
		return NoopPublisher{}
	}
	return &RabbitPublisher{URL: url}
}

// NoopPublisher discards every event.
type NoopPublisher struct{}

func (NoopPublisher) PublishCounterIncremented(context.Context, q.CounterIncrementedEvent) error {
	return nil
}

// RabbitPublisher opens a short-lived connection per event. The dial, the
// handshake and the publish are all bounded by the caller's context. Messages
// are marked as persistent.
type RabbitPublisher struct {
	URL string
}

// PublishCounterIncremented declares the queue and publishes ev to it.
func (p *RabbitPublisher) PublishCounterIncremented(ctx context.Context, ev q.CounterIncrementedEvent) error {
	conn, err := q.Dial(ctx, p.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		q.CounterQueueName, // name
		true,               // durable
		false,              // autoDelete
		false,              // exclusive
		false,              // noWait
		nil,                // args
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",                 // default exchange
		q.CounterQueueName, // routing key = queue name
		false,              // mandatory
		false,              // immediate
		pub,
	); err != nil {
		return fmt.Errorf("rabbitmq publish: %w", err)
	}
	return nil
}
