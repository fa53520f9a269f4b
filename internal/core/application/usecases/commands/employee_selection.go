package commands

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"
)

var ErrEmployeeIsNotActive = errs.NewValueIsInvalidError("employee is not active")

// selectEmployee returns the requested employee when set, otherwise the least busy
// active one.
func selectEmployee(ctx context.Context, uow UoW, requested *kernel.UUID) (*employee.Employee, error) {
	if requested != nil {
		e, err := uow.EmployeeRepository().Get(ctx, *requested)
		if err != nil {
			return nil, err
		}
		if !e.IsActive() {
			return nil, ErrEmployeeIsNotActive
		}
		return e, nil
	}

	employees, err := uow.EmployeeRepository().GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	inProgress, err := uow.OrderRepository().GetAllInProgress(ctx)
	if err != nil {
		return nil, err
	}

	return services.NewWorkloadBalancer().Pick(employees, inProgress)
}

func now() time.Time {
	return time.Now().UTC()
}
