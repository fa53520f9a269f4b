// Package queries contains the read side of the laundry service. Queries return
// read models shaped for the API and never change state.
package queries

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists orders, newest first, optionally narrowed to one status.
//
// Example:
//
//	status := order.Pending
//	query, err := NewGetOrdersQuery(&status)
//	if err != nil {
//	    return err
//	}
//	views, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates the query. A nil status returns every order.
func NewGetOrdersQuery(status *order.Status) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
