package queries

import (
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/guard"
)

var ErrGetAllEmployeesQueryIsNotConstructed = errors.New(
	"GetAllEmployeesQuery must be created via NewGetAllEmployeesQuery constructor",
)

// GetAllEmployeesQuery lists employees with their current workload.
type GetAllEmployeesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllEmployeesQuery() GetAllEmployeesQuery {
	return GetAllEmployeesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllEmployeesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllEmployeesQueryIsNotConstructed)
}

// EmployeeView is an employee with the loads and orders currently in progress.
type EmployeeView struct {
	ID           kernel.UUID
	Name         string
	Phone        string
	Active       bool
	OrdersInWork int
	LoadsInWork  int
}
