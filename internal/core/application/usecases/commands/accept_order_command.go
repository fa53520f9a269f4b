package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand takes a pending customer order into work.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	code       orderid.Code
	employeeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand addresses the order by its current, usually placeholder, code.
// A nil employeeID lets the shop pick the least busy employee.
func NewAcceptOrderCommand(code orderid.Code, employeeID *kernel.UUID) (AcceptOrderCommand, error) {
	var employeeErr error
	if employeeID != nil {
		employeeErr = employeeID.Validate()
	}

	if err := errors.Join(code.Validate(), employeeErr); err != nil {
		return AcceptOrderCommand{}, err
	}

	return AcceptOrderCommand{
		code:       code,
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

func (c AcceptOrderCommand) Code() orderid.Code       { return c.code }
func (c AcceptOrderCommand) EmployeeID() *kernel.UUID { return c.employeeID }
