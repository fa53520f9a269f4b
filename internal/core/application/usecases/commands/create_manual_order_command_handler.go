package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
)

// CreateManualOrderCommandHandler saves an order entered by staff under the next
// sequential code, retrying when another writer takes the same code first.
//
// Example:
//
//	handler := NewCreateManualOrderCommandHandler(uowFactory, orderid.FloorZero, 1, logger)
//	code, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderCodeNotAllocated) {
//	    // Ask the user to submit again
//	}
type CreateManualOrderCommandHandler struct {
	codes codeAllocation
}

func NewCreateManualOrderCommandHandler(
	uowFactory UoWFactory,
	floor uint64,
	retries int,
	logger *slog.Logger,
) CreateManualOrderCommandHandler {
	return CreateManualOrderCommandHandler{
		codes: newCodeAllocation(uowFactory, floor, retries, logger),
	}
}

// Handle returns the code the order was saved under.
func (h CreateManualOrderCommandHandler) Handle(ctx context.Context, cmd CreateManualOrderCommand) (orderid.Code, error) {
	if err := cmd.Validate(); err != nil {
		return orderid.Code{}, err
	}

	return h.codes.run(ctx, func(ctx context.Context, uow UoW, code orderid.Code) error {
		tariff, err := uow.TariffRepository().Get(ctx)
		if err != nil {
			return err
		}

		e, err := selectEmployee(ctx, uow, cmd.EmployeeID())
		if err != nil {
			return err
		}

		o, err := order.NewManualOrder(cmd.OrderID(), code, cmd.Customer(), cmd.Input(), tariff, e.ID(), now())
		if err != nil {
			return err
		}

		return uow.OrderRepository().Add(ctx, o)
	})
}
