package rabbitmq_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"laundry/internal/adapters/out/rabbitmq"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) ExchangeDeclare(
	name, kind string,
	durable, autoDelete, internal, noWait bool,
	args amqp.Table,
) error {
	return m.Called(name, kind, durable, autoDelete, internal, noWait, args).Error(0)
}

func (m *MockChannel) PublishWithContext(
	ctx context.Context,
	exchange, key string,
	mandatory, immediate bool,
	msg amqp.Publishing,
) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func newChannel() *MockChannel {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", "laundry.orders", "topic", true, false, false, false, amqp.Table(nil)).Return(nil)
	return ch
}

func statusChanged(status, previous order.Status) order.StatusChanged {
	return order.StatusChanged{
		OrderID:    kernel.NewUUID(),
		Code:       orderid.FromNumber(10),
		Status:     status,
		Previous:   previous,
		OccurredAt: time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC),
	}
}

func TestNewOrderEventPublisher_DeclaresExchange(t *testing.T) {
	ch := newChannel()

	_, err := rabbitmq.NewOrderEventPublisher(ch, nil)

	require.NoError(t, err)
	ch.AssertExpectations(t)
}

func TestNewOrderEventPublisher_DeclareError(t *testing.T) {
	ch := new(MockChannel)
	ch.On("ExchangeDeclare", mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).Return(errors.New("access refused"))

	_, err := rabbitmq.NewOrderEventPublisher(ch, nil)

	require.ErrorContains(t, err, "access refused")
}

func TestNewOrderEventPublisher_NilChannel(t *testing.T) {
	_, err := rabbitmq.NewOrderEventPublisher(nil, nil)

	require.Error(t, err)
}

func TestOrderEventPublisher_Publish(t *testing.T) {
	ch := newChannel()
	var published amqp.Publishing
	ch.On("PublishWithContext", mock.Anything, "laundry.orders", "order.status.accepted", false, false, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(5).(amqp.Publishing)
		}).
		Return(nil)

	publisher, err := rabbitmq.NewOrderEventPublisher(ch, nil)
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), statusChanged(order.Accepted, order.Pending))

	require.NoError(t, err)
	assert.Equal(t, amqp.Persistent, published.DeliveryMode)
	assert.Equal(t, "application/json", published.ContentType)
	assert.Equal(t, "RKR010", published.CorrelationId)

	var msg map[string]any
	require.NoError(t, json.Unmarshal(published.Body, &msg))
	assert.Equal(t, "RKR010", msg["code"])
	assert.Equal(t, "accepted", msg["status"])
	assert.Equal(t, "pending", msg["previous"])
	assert.Equal(t, "2026-03-02T09:30:00Z", msg["occurredAt"])
}

func TestOrderEventPublisher_InitialStatusHasNoPrevious(t *testing.T) {
	msg := rabbitmq.NewStatusChangedMessage(statusChanged(order.Pending, order.Unknown))

	body, err := json.Marshal(msg)

	require.NoError(t, err)
	assert.NotContains(t, string(body), "previous")
}

func TestOrderEventPublisher_StopsAtFirstFailure(t *testing.T) {
	ch := newChannel()
	ch.On("PublishWithContext", mock.Anything, mock.Anything, "order.status.washing", false, false, mock.Anything).
		Return(errors.New("channel closed")).Once()

	publisher, err := rabbitmq.NewOrderEventPublisher(ch, nil)
	require.NoError(t, err)

	err = publisher.Publish(context.Background(),
		statusChanged(order.Washing, order.Accepted),
		statusChanged(order.Ready, order.Washing),
	)

	require.ErrorContains(t, err, "channel closed")
	ch.AssertNotCalled(t, "PublishWithContext", mock.Anything, mock.Anything, "order.status.ready",
		mock.Anything, mock.Anything, mock.Anything)
}

func TestRoutingKey(t *testing.T) {
	assert.Equal(t, "order.status.completed", rabbitmq.RoutingKey(order.Completed))
	assert.Equal(t, "order.status.cancelled", rabbitmq.RoutingKey(order.Cancelled))
}
