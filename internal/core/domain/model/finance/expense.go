package finance

import (
	"errors"
	"strings"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCategoryIsRequired = errs.NewValueIsRequiredError("category")
	ErrAmountIsInvalid    = errs.NewValueIsInvalidError("amount must be greater than 0")
	ErrDateIsRequired     = errs.NewValueIsRequiredError("date")

	ErrExpenseIsNotConstructed       = errors.New("Expense must be created via NewExpense constructor")
	ErrSalaryPaymentIsNotConstructed = errors.New("SalaryPayment must be created via NewSalaryPayment constructor")
)

// Expense is money spent running the shop: detergent, utilities, rent.
type Expense struct {
	id       kernel.UUID
	category string
	amount   decimal.Decimal
	spentOn  time.Time
	note     string
	guard    guard.ConstructorGuard
}

func NewExpense(id kernel.UUID, category string, amount decimal.Decimal, spentOn time.Time, note string) (*Expense, error) {
	e := &Expense{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&e.id, id),
		e.setCategory(category),
		setAmount(&e.amount, amount),
		setDate(&e.spentOn, spentOn),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Expense) Validate() error {
	if e == nil {
		return ErrExpenseIsNotConstructed
	}
	return e.guard.Validate(ErrExpenseIsNotConstructed)
}

func (e *Expense) ID() kernel.UUID         { return e.id }
func (e *Expense) Category() string        { return e.category }
func (e *Expense) Amount() decimal.Decimal { return e.amount }
func (e *Expense) SpentOn() time.Time      { return e.spentOn }
func (e *Expense) Note() string            { return e.note }

func (e *Expense) setCategory(category string) error {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return ErrCategoryIsRequired
	}
	e.category = category
	return nil
}

// SalaryPayment is money handed to an employee against their earned balance.
type SalaryPayment struct {
	id         kernel.UUID
	employeeID kernel.UUID
	amount     decimal.Decimal
	paidOn     time.Time
	guard      guard.ConstructorGuard
}

func NewSalaryPayment(id, employeeID kernel.UUID, amount decimal.Decimal, paidOn time.Time) (*SalaryPayment, error) {
	p := &SalaryPayment{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		setID(&p.id, id),
		setID(&p.employeeID, employeeID),
		setAmount(&p.amount, amount),
		setDate(&p.paidOn, paidOn),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *SalaryPayment) Validate() error {
	if p == nil {
		return ErrSalaryPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrSalaryPaymentIsNotConstructed)
}

func (p *SalaryPayment) ID() kernel.UUID         { return p.id }
func (p *SalaryPayment) EmployeeID() kernel.UUID { return p.employeeID }
func (p *SalaryPayment) Amount() decimal.Decimal { return p.amount }
func (p *SalaryPayment) PaidOn() time.Time       { return p.paidOn }

func setID(dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}

func setAmount(dst *decimal.Decimal, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrAmountIsInvalid
	}
	*dst = amount
	return nil
}

func setDate(dst *time.Time, t time.Time) error {
	if t.IsZero() {
		return ErrDateIsRequired
	}
	*dst = Day(t)
	return nil
}
