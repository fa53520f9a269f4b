package commands

import (
	"context"
)

type DeactivateEmployeeCommandHandler struct {
	uowFactory EmployeeUoWFactory
}

func NewDeactivateEmployeeCommandHandler(uowFactory EmployeeUoWFactory) DeactivateEmployeeCommandHandler {
	return DeactivateEmployeeCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeactivateEmployeeCommandHandler) Handle(ctx context.Context, cmd DeactivateEmployeeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.EmployeeRepository()

	e, err := repo.Get(ctx, cmd.EmployeeID())
	if err != nil {
		return err
	}

	if err = e.Deactivate(); err != nil {
		return err
	}

	if err = repo.Update(ctx, e); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
