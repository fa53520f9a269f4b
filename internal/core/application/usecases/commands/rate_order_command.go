package commands

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

type RateOrderCommand struct { //nolint:recvcheck //using for validation
	code   orderid.Code
	rating order.Rating

	guard guard.ConstructorGuard
}

func NewRateOrderCommand(code orderid.Code, stars int, comment string) (RateOrderCommand, error) {
	rating, ratingErr := order.NewRating(stars, comment)
	if err := errors.Join(code.Validate(), ratingErr); err != nil {
		return RateOrderCommand{}, err
	}

	return RateOrderCommand{
		code:   code,
		rating: rating,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

func (c RateOrderCommand) Code() orderid.Code   { return c.code }
func (c RateOrderCommand) Rating() order.Rating { return c.rating }
