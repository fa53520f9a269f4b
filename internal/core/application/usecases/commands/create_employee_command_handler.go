package commands

import (
	"context"

	"laundry/internal/core/domain/model/employee"
)

type CreateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewCreateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) CreateEmployeeCommandHandler {
	return CreateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateEmployeeCommandHandler) Handle(ctx context.Context, cmd CreateEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	e, err := employee.NewEmployee(cmd.EmployeeID(), cmd.Name(), cmd.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EmployeeRepository().Add(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
