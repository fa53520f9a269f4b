package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrDeactivateEmployeeCommandIsNotConstructed = errors.New(
	"DeactivateEmployeeCommand must be created via NewDeactivateEmployeeCommand constructor",
)

// DeactivateEmployeeCommand stops assigning new orders to an employee. Orders already
// in their hands stay with them.
type DeactivateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeactivateEmployeeCommand(employeeID kernel.UUID) (DeactivateEmployeeCommand, error) {
	if err := employeeID.Validate(); err != nil {
		return DeactivateEmployeeCommand{}, err
	}

	return DeactivateEmployeeCommand{
		employeeID: employeeID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeactivateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateEmployeeCommandIsNotConstructed)
}

func (c DeactivateEmployeeCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}
