package commands

import (
	"errors"

	"laundry/internal/core/domain/model/finance"
	"laundry/internal/pkg/guard"
)

var ErrRecordExpenseCommandIsNotConstructed = errors.New(
	"RecordExpenseCommand must be created via NewRecordExpenseCommand constructor",
)

type RecordExpenseCommand struct { //nolint:recvcheck //using for validation
	expense *finance.Expense

	guard guard.ConstructorGuard
}

// NewRecordExpenseCommand wraps an expense built with finance.NewExpense.
func NewRecordExpenseCommand(expense *finance.Expense) (RecordExpenseCommand, error) {
	if err := expense.Validate(); err != nil {
		return RecordExpenseCommand{}, err
	}

	return RecordExpenseCommand{
		expense: expense,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecordExpenseCommand) Validate() error {
	return c.guard.Validate(ErrRecordExpenseCommandIsNotConstructed)
}

func (c RecordExpenseCommand) Expense() *finance.Expense {
	return c.expense
}
