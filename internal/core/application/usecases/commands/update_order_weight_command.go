package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/guard"
)

var ErrUpdateOrderWeightCommandIsNotConstructed = errors.New(
	"UpdateOrderWeightCommand must be created via NewUpdateOrderWeightCommand constructor",
)

// UpdateOrderWeightCommand records the weight staff measured at the counter.
type UpdateOrderWeightCommand struct { //nolint:recvcheck //using for validation
	code   orderid.Code
	weight kernel.Kilograms

	guard guard.ConstructorGuard
}

func NewUpdateOrderWeightCommand(code orderid.Code, weight kernel.Kilograms) (UpdateOrderWeightCommand, error) {
	if err := code.Validate(); err != nil {
		return UpdateOrderWeightCommand{}, err
	}

	return UpdateOrderWeightCommand{
		code:   code,
		weight: weight,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderWeightCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderWeightCommandIsNotConstructed)
}

func (c UpdateOrderWeightCommand) Code() orderid.Code       { return c.code }
func (c UpdateOrderWeightCommand) Weight() kernel.Kilograms { return c.weight }
