package commands

import (
	"errors"

	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordOrderPaymentCommandIsNotConstructed = errors.New(
	"RecordOrderPaymentCommand must be created via NewRecordOrderPaymentCommand constructor",
)

// RecordOrderPaymentCommand records money received for an order. Nothing is charged.
type RecordOrderPaymentCommand struct { //nolint:recvcheck //using for validation
	code   orderid.Code
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

func NewRecordOrderPaymentCommand(code orderid.Code, amount decimal.Decimal) (RecordOrderPaymentCommand, error) {
	if err := code.Validate(); err != nil {
		return RecordOrderPaymentCommand{}, err
	}

	return RecordOrderPaymentCommand{
		code:   code,
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RecordOrderPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordOrderPaymentCommandIsNotConstructed)
}

func (c RecordOrderPaymentCommand) Code() orderid.Code      { return c.code }
func (c RecordOrderPaymentCommand) Amount() decimal.Decimal { return c.amount }
