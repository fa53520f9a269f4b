package order

import (
	"errors"
	"strings"

	"laundry/internal/pkg/errs"
)

var (
	ErrCustomerNameIsRequired  = errs.NewValueIsRequiredError("customer name")
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("customer phone")
)

// Customer is who the laundry belongs to. Address is only needed when the package
// includes transport, which the order checks.
type Customer struct {
	name    string
	phone   string
	address string
}

func NewCustomer(name, phone, address string) (Customer, error) {
	c := Customer{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		address: strings.TrimSpace(address),
	}

	var nameErr, phoneErr error
	if c.name == "" {
		nameErr = ErrCustomerNameIsRequired
	}
	if c.phone == "" {
		phoneErr = ErrCustomerPhoneIsRequired
	}
	if err := errors.Join(nameErr, phoneErr); err != nil {
		return Customer{}, err
	}

	return c, nil
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Phone() string   { return c.phone }
func (c Customer) Address() string { return c.address }
