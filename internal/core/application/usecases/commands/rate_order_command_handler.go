package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

type RateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRateOrderCommandHandler(uowFactory OrderUoWFactory) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory.Create(), cmd.Code(), func(o *order.Order) error {
		return o.Rate(cmd.Rating())
	})
}
