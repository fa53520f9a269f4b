// Package rabbitmq publishes order status changes to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"laundry/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// Exchange is the topic exchange order events are published to.
	Exchange = "laundry.orders"

	routingKeyPrefix = "order.status."
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// StatusChangedMessage is the JSON body of an order status event.
type StatusChangedMessage struct {
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	Previous   string    `json:"previous,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderEventPublisher sends every order.StatusChanged as a persistent message with
// routing key order.status.<status>.
type OrderEventPublisher struct {
	ch     Channel
	logger *slog.Logger
}

// NewOrderEventPublisher declares the exchange and returns a publisher on ch.
func NewOrderEventPublisher(ch Channel, logger *slog.Logger) (*OrderEventPublisher, error) {
	if ch == nil {
		return nil, errors.New("rabbitmq channel is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	if err := ch.ExchangeDeclare(Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", Exchange, err)
	}

	return &OrderEventPublisher{
		ch:     ch,
		logger: logger.With("component", "order_event_publisher"),
	}, nil
}

// Publish sends the events in order and stops at the first failure.
func (p *OrderEventPublisher) Publish(ctx context.Context, events ...order.StatusChanged) error {
	for _, e := range events {
		body, err := json.Marshal(NewStatusChangedMessage(e))
		if err != nil {
			return err
		}

		key := RoutingKey(e.Status)
		if err = p.ch.PublishWithContext(ctx, Exchange, key, false, false, amqp.Publishing{
			DeliveryMode:  amqp.Persistent,
			ContentType:   "application/json",
			MessageId:     fmt.Sprintf("%s-%d", e.OrderID, e.OccurredAt.UnixNano()),
			CorrelationId: e.Code.String(),
			Timestamp:     time.Now().UTC(),
			Body:          body,
		}); err != nil {
			return fmt.Errorf("publish %s for order %s: %w", key, e.Code, err)
		}

		p.logger.DebugContext(ctx, "order event published", "code", e.Code.String(), "routing_key", key)
	}

	return nil
}

// RoutingKey returns order.status.<status>.
func RoutingKey(s order.Status) string {
	return routingKeyPrefix + s.String()
}

func NewStatusChangedMessage(e order.StatusChanged) StatusChangedMessage {
	msg := StatusChangedMessage{
		Code:       e.Code.String(),
		Status:     e.Status.String(),
		OccurredAt: e.OccurredAt.UTC(),
	}
	if e.Previous != order.Unknown {
		msg.Previous = e.Previous.String()
	}
	return msg
}
