package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/guard"
)

var ErrCreateManualOrderCommandIsNotConstructed = errors.New(
	"CreateManualOrderCommand must be created via NewCreateManualOrderCommand constructor",
)

// CreateManualOrderCommand is an order entered by staff for a walk-in or phone
// customer. The laundry is weighed at the counter, so the weight is final.
type CreateManualOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customer   order.Customer
	input      pricing.PricingInput
	employeeID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateManualOrderCommand creates the command. A nil employeeID lets the shop pick
// the least busy employee.
func NewCreateManualOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	servicePackage pricing.ServicePackage,
	weight kernel.Kilograms,
	distance kernel.Kilometers,
	employeeID *kernel.UUID,
) (CreateManualOrderCommand, error) {
	cmd := CreateManualOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	var employeeErr error
	if employeeID != nil {
		employeeErr = employeeID.Validate()
		cmd.employeeID = employeeID
	}

	input, inputErr := pricing.NewPricingInput(servicePackage, weight, distance)
	cmd.input = input

	if err := errors.Join(orderID.Validate(), inputErr, employeeErr); err != nil {
		return CreateManualOrderCommand{}, err
	}
	cmd.orderID = orderID

	return cmd, nil
}

func (c CreateManualOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateManualOrderCommandIsNotConstructed)
}

func (c CreateManualOrderCommand) OrderID() kernel.UUID        { return c.orderID }
func (c CreateManualOrderCommand) Customer() order.Customer    { return c.customer }
func (c CreateManualOrderCommand) Input() pricing.PricingInput { return c.input }

// EmployeeID is nil when the employee should be picked automatically.
func (c CreateManualOrderCommand) EmployeeID() *kernel.UUID { return c.employeeID }
