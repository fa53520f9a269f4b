package financerepo

import (
	"context"
	"time"

	"laundry/internal/adapters/out/postgres/pgerrs"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormFinanceRepository implements FinanceRepository using GORM. Dates are bound as
// YYYY-MM-DD strings so comparisons happen on the date columns, independent of the
// session time zone.
type GormFinanceRepository struct {
	db *gorm.DB
}

func NewGormFinanceRepository(db *gorm.DB) *GormFinanceRepository {
	return &GormFinanceRepository{db: db}
}

func (r *GormFinanceRepository) AddExpense(ctx context.Context, expense *finance.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}

	dto := expenseFromDomain(expense)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("expense", expense.ID().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormFinanceRepository) AddSalaryPayment(ctx context.Context, payment *finance.SalaryPayment) error {
	if err := payment.Validate(); err != nil {
		return err
	}

	dto := salaryPaymentFromDomain(payment)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerrs.IsUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("salary payment", payment.ID().String(), err)
		}
		return err
	}
	return nil
}

func (r *GormFinanceRepository) GetExpensesBetween(ctx context.Context, from, to time.Time) ([]*finance.Expense, error) {
	var dtos []ExpenseDTO
	if err := r.db.WithContext(ctx).
		Where("spent_on >= ? AND spent_on < ?", day(from), day(to)).
		Order("spent_on").
		Order("category").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	expenses := make([]*finance.Expense, 0, len(dtos))
	for _, dto := range dtos {
		e, err := expenseToDomain(dto)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

func (r *GormFinanceRepository) GetSalaryPaymentsBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*finance.SalaryPayment, error) {
	var dtos []SalaryPaymentDTO
	if err := r.db.WithContext(ctx).
		Where("paid_on >= ? AND paid_on < ?", day(from), day(to)).
		Order("paid_on").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	payments := make([]*finance.SalaryPayment, 0, len(dtos))
	for _, dto := range dtos {
		p, err := salaryPaymentToDomain(dto)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func day(t time.Time) string {
	return t.UTC().Format(finance.DateLayout)
}
