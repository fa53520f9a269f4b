package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

// UpdateOrderWeightCommandHandler re-prices an order with the active tariff.
type UpdateOrderWeightCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewUpdateOrderWeightCommandHandler(uowFactory PricingUoWFactory) UpdateOrderWeightCommandHandler {
	return UpdateOrderWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateOrderWeightCommandHandler) Handle(ctx context.Context, cmd UpdateOrderWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return updateOrder(ctx, uow, cmd.Code(), func(o *order.Order) error {
		tariff, err := uow.TariffRepository().Get(ctx)
		if err != nil {
			return err
		}
		return o.Reprice(tariff, cmd.Weight())
	})
}
