// Package events publishes reservation lifecycle messages to RabbitMQ so
// downstream consumers (notifications, analytics) can react without querying
// the primary database. Publishing is best-effort: errors are returned for
// logging but must never interrupt the request flow.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CamiloCortesM/nex-stay/internal/pkg/errs"
	"github.com/CamiloCortesM/nex-stay/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	QueueReservationCreated   = "reservation.created"
	QueueReservationCancelled = "reservation.cancelled"
)

type AMQPPublisher struct {
	url string
}

func NewAMQPPublisher(url string) *AMQPPublisher {
	return &AMQPPublisher{url: url}
}

func (p *AMQPPublisher) ReservationCreated(ctx context.Context, event commands.ReservationEvent) error {
	return p.publish(ctx, QueueReservationCreated, event)
}

func (p *AMQPPublisher) ReservationCancelled(ctx context.Context, event commands.ReservationEvent) error {
	return p.publish(ctx, QueueReservationCancelled, event)
}

func (p *AMQPPublisher) publish(ctx context.Context, queue string, event commands.ReservationEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return errs.Wrap(err, "rabbitmq dial failed")
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return errs.Wrap(err, "rabbitmq channel open failed")
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err = ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return errs.Wrap(err, "rabbitmq queue declare failed")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal event failed")
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err = ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		return errs.Wrap(err, "rabbitmq publish failed")
	}

	return nil
}

// NoopPublisher is used when no broker is configured.
type NoopPublisher struct{}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) ReservationCreated(context.Context, commands.ReservationEvent) error {
	return nil
}

func (p *NoopPublisher) ReservationCancelled(context.Context, commands.ReservationEvent) error {
	return nil
}
