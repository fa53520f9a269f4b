package queries

import (
	"errors"

	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/guard"
)

var ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
	"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor",
)

// GetOrderByCodeQuery looks an order up by its RKR code or its placeholder, which is
// how customers track an order before it is accepted.
type GetOrderByCodeQuery struct {
	code orderid.Code

	guard guard.ConstructorGuard
}

func NewGetOrderByCodeQuery(code orderid.Code) (GetOrderByCodeQuery, error) {
	if err := code.Validate(); err != nil {
		return GetOrderByCodeQuery{}, err
	}

	return GetOrderByCodeQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}

func (q GetOrderByCodeQuery) Code() orderid.Code {
	return q.code
}
