package order

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/orderid"
)

// StatusChanged is raised whenever an order enters a new status, including the
// initial one.
type StatusChanged struct {
	OrderID    kernel.UUID
	Code       orderid.Code
	Status     Status
	Previous   Status
	OccurredAt time.Time
}

// DomainEvents returns the events raised since the order was loaded or last cleared.
func (o *Order) DomainEvents() []StatusChanged {
	out := make([]StatusChanged, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) raiseStatusChanged(previous Status, now time.Time) {
	o.events = append(o.events, StatusChanged{
		OrderID:    o.id,
		Code:       o.code,
		Status:     o.status,
		Previous:   previous,
		OccurredAt: now.UTC(),
	})
}
