package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle. Order events raised by
// aggregates saved through the unit of work are published once Commit succeeds.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// EmployeeRepository returns an EmployeeRepository bound to the current transaction.
	EmployeeRepository() EmployeeRepository

	// FinanceRepository returns a FinanceRepository bound to the current transaction.
	FinanceRepository() FinanceRepository

	// TariffRepository returns a TariffRepository bound to the current transaction.
	TariffRepository() TariffRepository
}
