package ports

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/finance"
)

// FinanceRepository stores expenses and salary payments. Both are append-only.
type FinanceRepository interface {
	AddExpense(ctx context.Context, expense *finance.Expense) error
	AddSalaryPayment(ctx context.Context, payment *finance.SalaryPayment) error

	// GetExpensesBetween retrieves expenses spent in [from, to).
	GetExpensesBetween(ctx context.Context, from, to time.Time) ([]*finance.Expense, error)

	// GetSalaryPaymentsBetween retrieves salary payments made in [from, to).
	GetSalaryPaymentsBetween(ctx context.Context, from, to time.Time) ([]*finance.SalaryPayment, error)
}
