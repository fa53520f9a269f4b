package commands

import (
	"errors"

	"laundry/internal/core/domain/model/finance"
	"laundry/internal/pkg/guard"
)

var ErrRecordSalaryPaymentCommandIsNotConstructed = errors.New(
	"RecordSalaryPaymentCommand must be created via NewRecordSalaryPaymentCommand constructor",
)

type RecordSalaryPaymentCommand struct { //nolint:recvcheck //using for validation
	payment *finance.SalaryPayment

	guard guard.ConstructorGuard
}

// NewRecordSalaryPaymentCommand wraps a payment built with finance.NewSalaryPayment.
func NewRecordSalaryPaymentCommand(payment *finance.SalaryPayment) (RecordSalaryPaymentCommand, error) {
	if err := payment.Validate(); err != nil {
		return RecordSalaryPaymentCommand{}, err
	}

	return RecordSalaryPaymentCommand{
		payment: payment,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RecordSalaryPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordSalaryPaymentCommandIsNotConstructed)
}

func (c RecordSalaryPaymentCommand) Payment() *finance.SalaryPayment {
	return c.payment
}
