package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
)

type RecordOrderPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRecordOrderPaymentCommandHandler(uowFactory OrderUoWFactory) RecordOrderPaymentCommandHandler {
	return RecordOrderPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordOrderPaymentCommandHandler) Handle(ctx context.Context, cmd RecordOrderPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateOrder(ctx, h.uowFactory.Create(), cmd.Code(), func(o *order.Order) error {
		return o.RecordPayment(cmd.Amount(), now())
	})
}
