package ports

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// OrderEventPublisher delivers order status changes to other systems after the change
// was committed.
type OrderEventPublisher interface {
	Publish(ctx context.Context, events ...order.StatusChanged) error
}
