package employee

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var (
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrEmployeeIsInactive is returned when deactivating an employee twice.
	ErrEmployeeIsInactive = errs.NewValueIsInvalidError("employee is already inactive")
	// ErrEmployeeIsNotConstructed is returned when using an improperly initialized Employee.
	ErrEmployeeIsNotConstructed = errors.New("Employee must be created via NewEmployee constructor")
)

// Employee is a member of the shop staff.
//
// Business rules:
//   - Employee must have a valid UUID, non-empty name and non-empty phone
//   - New employees are active
//   - An inactive employee can not be deactivated again
//
// Example usage:
//
//	e, err := NewEmployee(kernel.NewUUID(), "Liza Cruz", "+63 917 555 0199")
//	if err != nil {
//	    // Handle construction error
//	}
type Employee struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool
	guard  guard.ConstructorGuard
}

// NewEmployee creates an active Employee.
func NewEmployee(id kernel.UUID, name, phone string) (*Employee, error) {
	return RestoreEmployee(id, name, phone, true)
}

// RestoreEmployee reconstructs an Employee from persistent storage.
func RestoreEmployee(id kernel.UUID, name, phone string, active bool) (*Employee, error) {
	e := &Employee{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setName(name),
		e.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// IsEqual compares two employees by identifier.
func (e *Employee) IsEqual(other *Employee) bool {
	if other == nil {
		return false
	}
	return e.id.IsEqual(other.id)
}

// Validate checks if the Employee was properly constructed.
func (e *Employee) Validate() error {
	if e == nil {
		return ErrEmployeeIsNotConstructed
	}
	return e.guard.Validate(ErrEmployeeIsNotConstructed)
}

func (e *Employee) ID() kernel.UUID {
	return e.id
}

func (e *Employee) Name() string {
	return e.name
}

func (e *Employee) Phone() string {
	return e.phone
}

// IsActive reports whether the employee can be assigned new orders.
func (e *Employee) IsActive() bool {
	return e.active
}

// Deactivate removes the employee from future order assignment.
func (e *Employee) Deactivate() error {
	if !e.active {
		return ErrEmployeeIsInactive
	}
	e.active = false
	return nil
}

func (e *Employee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	e.id = id
	return nil
}

func (e *Employee) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	e.name = name
	return nil
}

func (e *Employee) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}

	e.phone = phone
	return nil
}
