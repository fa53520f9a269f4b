package commands

import (
	"context"
)

// RecordSalaryPaymentCommandHandler records a payment to an existing employee,
// active or not.
type RecordSalaryPaymentCommandHandler struct {
	uowFactory FinanceUoWFactory
}

func NewRecordSalaryPaymentCommandHandler(uowFactory FinanceUoWFactory) RecordSalaryPaymentCommandHandler {
	return RecordSalaryPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordSalaryPaymentCommandHandler) Handle(ctx context.Context, cmd RecordSalaryPaymentCommand) error {
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

	if _, err := uow.EmployeeRepository().Get(ctx, cmd.Payment().EmployeeID()); err != nil {
		return err
	}

	if err := uow.FinanceRepository().AddSalaryPayment(ctx, cmd.Payment()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
