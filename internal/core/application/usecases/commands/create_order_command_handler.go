package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
)

// CreateOrderCommandHandler places a customer order. The order starts Pending under a
// placeholder code and gets its permanent code when staff accept it.
type CreateOrderCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory PricingUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle prices the order with the active tariff and returns its placeholder code.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (orderid.Code, error) {
	if err := cmd.Validate(); err != nil {
		return orderid.Code{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return orderid.Code{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	tariff, err := uow.TariffRepository().Get(ctx)
	if err != nil {
		return orderid.Code{}, err
	}

	o, err := order.NewCustomerOrder(cmd.OrderID(), cmd.Customer(), cmd.Input(), tariff, now())
	if err != nil {
		return orderid.Code{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return orderid.Code{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return orderid.Code{}, err
	}

	return o.Code(), nil
}
