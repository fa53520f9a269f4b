package commands

import (
	"errors"

	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves an order to washing, ready, completed or cancelled.
// Acceptance has its own command.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	code   orderid.Code
	status order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(code orderid.Code, status order.Status) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(code.Validate(), status.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	if status == order.Accepted {
		return ChangeOrderStatusCommand{}, order.ErrAcceptRequiresCode
	}

	return ChangeOrderStatusCommand{
		code:   code,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) Code() orderid.Code   { return c.code }
func (c ChangeOrderStatusCommand) Status() order.Status { return c.status }
