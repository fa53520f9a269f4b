// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"laundry/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	EmployeeRepoFactory interface {
		EmployeeRepository() ports.EmployeeRepository
	}

	FinanceRepoFactory interface {
		FinanceRepository() ports.FinanceRepository
	}

	TariffRepoFactory interface {
		TariffRepository() ports.TariffRepository
	}

	// OrderUoW is used by commands that move an existing order along.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PricingUoW is used by commands that price an order with the active tariff.
	PricingUoW interface {
		TxManager
		OrderRepoFactory
		TariffRepoFactory
	}

	PricingUoWFactory interface {
		Create() PricingUoW
	}

	TariffUoW interface {
		TxManager
		TariffRepoFactory
	}

	TariffUoWFactory interface {
		Create() TariffUoW
	}

	EmployeeUoW interface {
		TxManager
		EmployeeRepoFactory
	}

	EmployeeUoWFactory interface {
		Create() EmployeeUoW
	}

	// FinanceUoW records money movements; salary payments check the employee exists.
	FinanceUoW interface {
		TxManager
		FinanceRepoFactory
		EmployeeRepoFactory
	}

	FinanceUoWFactory interface {
		Create() FinanceUoW
	}

	// UoW spans orders, employees and the tariff. Used by the commands that give an
	// order its permanent code.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   employeeRepo := uow.EmployeeRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		EmployeeRepoFactory
		TariffRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
