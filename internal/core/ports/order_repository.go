// Package ports defines the contracts between the laundry domain and infrastructure:
// repositories, the unit of work and the event publisher.
package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order. A code that is already taken is reported as
	// *errs.ObjectAlreadyExistsError, so callers can retry with another code.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Like Add, a code conflict is
	// reported as *errs.ObjectAlreadyExistsError.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode finds an order by its permanent or placeholder code.
	GetByCode(ctx context.Context, code orderid.Code) (*order.Order, error)

	// LatestPermanentCode returns the most recently assigned RKR code, or "" when no
	// order has one yet.
	LatestPermanentCode(ctx context.Context) (string, error)

	// GetAllInProgress retrieves orders in Accepted, Washing or Ready status.
	GetAllInProgress(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingCreatedBefore retrieves pending orders placed before t.
	GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error)

	// GetAllCompletedBetween retrieves orders completed in [from, to).
	GetAllCompletedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error)
}
