package ports

import (
	"context"

	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/kernel"
)

// EmployeeRepository defines the persistence contract for employees.
type EmployeeRepository interface {
	Add(ctx context.Context, aggregate *employee.Employee) error
	Update(ctx context.Context, aggregate *employee.Employee) error
	Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error)

	// GetAll retrieves active and inactive employees ordered by name.
	GetAll(ctx context.Context) ([]*employee.Employee, error)

	// GetAllActive retrieves employees that can take new orders, ordered by name.
	GetAllActive(ctx context.Context) ([]*employee.Employee, error)
}
