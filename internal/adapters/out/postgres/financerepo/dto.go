// Package financerepo persists expenses and salary payments with gorm.
package financerepo

import (
	"time"

	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Category string          `gorm:"type:varchar(64);not null;index"`
	Amount   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SpentOn  time.Time       `gorm:"type:date;not null;index"`
	Note     string          `gorm:"not null;default:''"`
}

func (ExpenseDTO) TableName() string {
	return "expenses"
}

type SalaryPaymentDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaidOn     time.Time       `gorm:"type:date;not null;index"`
}

func (SalaryPaymentDTO) TableName() string {
	return "salary_payments"
}

func expenseFromDomain(e *finance.Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:       e.ID().Bytes(),
		Category: e.Category(),
		Amount:   e.Amount(),
		SpentOn:  e.SpentOn(),
		Note:     e.Note(),
	}
}

func expenseToDomain(dto ExpenseDTO) (*finance.Expense, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return finance.NewExpense(id, dto.Category, dto.Amount, dto.SpentOn, dto.Note)
}

func salaryPaymentFromDomain(p *finance.SalaryPayment) SalaryPaymentDTO {
	return SalaryPaymentDTO{
		ID:         p.ID().Bytes(),
		EmployeeID: p.EmployeeID().Bytes(),
		Amount:     p.Amount(),
		PaidOn:     p.PaidOn(),
	}
}

func salaryPaymentToDomain(dto SalaryPaymentDTO) (*finance.SalaryPayment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}
	return finance.NewSalaryPayment(id, employeeID, dto.Amount, dto.PaidOn)
}
