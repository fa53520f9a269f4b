package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/require"
)

func createCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Maria Santos", "0917 555 0101", "12 Mabini St")
	require.NoError(t, err)
	return c
}

func createEmployee(t *testing.T, name string) *employee.Employee {
	t.Helper()
	e, err := employee.NewEmployee(kernel.NewUUID(), name, "0918")
	require.NoError(t, err)
	return e
}

func createPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	in, err := pricing.NewPricingInput(pricing.Package3, kernel.NewKilograms(10), kernel.NewKilometers(4))
	require.NoError(t, err)
	o, err := order.NewCustomerOrder(kernel.NewUUID(), createCustomer(t), in, pricing.DefaultTariff(), time.Now())
	require.NoError(t, err)
	return o
}

func createAcceptedOrder(t *testing.T) *order.Order {
	t.Helper()
	o := createPendingOrder(t)
	require.NoError(t, o.Accept(orderid.FromNumber(7), kernel.NewUUID(), time.Now()))
	return o
}

// restoreCopy returns an independent copy of o, as a repository would load it.
func restoreCopy(t *testing.T, o *order.Order) *order.Order {
	t.Helper()
	c, err := order.RestoreOrder(o.Snapshot())
	require.NoError(t, err)
	return c
}

func withCode(code string) func(o *order.Order) bool {
	return func(o *order.Order) bool {
		return o.Code().String() == code
	}
}
