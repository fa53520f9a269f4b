package commands

import (
	"context"
)

type RecordExpenseCommandHandler struct {
	uowFactory FinanceUoWFactory
}

func NewRecordExpenseCommandHandler(uowFactory FinanceUoWFactory) RecordExpenseCommandHandler {
	return RecordExpenseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordExpenseCommandHandler) Handle(ctx context.Context, cmd RecordExpenseCommand) error {
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

	if err := uow.FinanceRepository().AddExpense(ctx, cmd.Expense()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
