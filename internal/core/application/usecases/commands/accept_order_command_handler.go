package commands

import (
	"context"
	"log/slog"

	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/services"
)

// AcceptOrderCommandHandler replaces a pending order's placeholder with the next
// sequential code and hands it to an employee.
type AcceptOrderCommandHandler struct {
	codes codeAllocation
}

func NewAcceptOrderCommandHandler(
	uowFactory UoWFactory,
	floor uint64,
	retries int,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		codes: newCodeAllocation(uowFactory, floor, retries, logger),
	}
}

// Handle returns the permanent code given to the order.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (orderid.Code, error) {
	if err := cmd.Validate(); err != nil {
		return orderid.Code{}, err
	}

	return h.codes.run(ctx, func(ctx context.Context, uow UoW, code orderid.Code) error {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetByCode(ctx, cmd.Code())
		if err != nil {
			return err
		}

		if cmd.EmployeeID() != nil {
			e, err := selectEmployee(ctx, uow, cmd.EmployeeID())
			if err != nil {
				return err
			}
			if err = o.Accept(code, e.ID(), now()); err != nil {
				return err
			}
		} else {
			employees, err := uow.EmployeeRepository().GetAllActive(ctx)
			if err != nil {
				return err
			}
			inProgress, err := orderRepo.GetAllInProgress(ctx)
			if err != nil {
				return err
			}
			if _, err = services.NewWorkloadBalancer().Assign(o, code, employees, inProgress, now()); err != nil {
				return err
			}
		}

		return orderRepo.Update(ctx, o)
	})
}
