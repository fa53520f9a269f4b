package commands

import (
	"context"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
)

// updateOrder loads the order by code inside uow, applies change and saves it.
func updateOrder(
	ctx context.Context,
	uow OrderUoW,
	code orderid.Code,
	change func(o *order.Order) error,
) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetByCode(ctx, code)
	if err != nil {
		return err
	}

	if err = change(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
