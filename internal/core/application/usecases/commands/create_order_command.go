package commands

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's checkout. The weight is the customer's
// estimate; staff replace it once the laundry is weighed.
//
// Example:
//
//	customer, _ := order.NewCustomer("Maria Santos", "0917 555 0101", "12 Mabini St")
//	weight := 9.0
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customer, pricing.Package3, &weight, 4)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer
	input    pricing.PricingInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order identifier and service package. A nil
// weight is stored as 0 kg until the laundry is weighed; it still pays for one load.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	servicePackage pricing.ServicePackage,
	weight *float64,
	distance float64,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setInput(servicePackage, weight, distance),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Input() pricing.PricingInput {
	return c.input
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setInput(p pricing.ServicePackage, weight *float64, distance float64) error {
	var kg float64
	if weight != nil {
		kg = *weight
	}

	in, err := pricing.NewPricingInput(p, kernel.NewKilograms(kg), kernel.NewKilometers(distance))
	if err != nil {
		return err
	}

	c.input = in
	return nil
}
