package commands

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrCreateEmployeeCommandIsNotConstructed = errors.New(
	"CreateEmployeeCommand must be created via NewCreateEmployeeCommand constructor",
)

type CreateEmployeeCommand struct { //nolint:recvcheck //using for validation
	employeeID kernel.UUID
	name       string
	phone      string

	guard guard.ConstructorGuard
}

func NewCreateEmployeeCommand(employeeID kernel.UUID, name, phone string) (CreateEmployeeCommand, error) {
	cmd := CreateEmployeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmployeeID(employeeID),
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreateEmployeeCommand{}, err
	}

	return cmd, nil
}

func (c CreateEmployeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateEmployeeCommandIsNotConstructed)
}

func (c CreateEmployeeCommand) EmployeeID() kernel.UUID { return c.employeeID }
func (c CreateEmployeeCommand) Name() string            { return c.name }
func (c CreateEmployeeCommand) Phone() string           { return c.phone }

func (c *CreateEmployeeCommand) setEmployeeID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.employeeID = id
	return nil
}

func (c *CreateEmployeeCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return employee.ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateEmployeeCommand) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return employee.ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}
