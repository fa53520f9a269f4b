package finance

import (
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DailyFinance is one row of the finance summary. Net is revenue minus expenses
// minus salaries paid.
type DailyFinance struct {
	Date     time.Time
	Orders   int
	Loads    int
	Revenue  decimal.Decimal
	Expenses decimal.Decimal
	Salaries decimal.Decimal
	Net      decimal.Decimal
}

// EmployeeEarnings is what an employee earned over a period and what is still owed.
type EmployeeEarnings struct {
	EmployeeID kernel.UUID
	Name       string
	Loads      int
	Earned     decimal.Decimal
	Paid       decimal.Decimal
	Balance    decimal.Decimal
}

// Summary is the shop's income statement for a period.
type Summary struct {
	Period      Period
	RatePerLoad decimal.Decimal
	Days        []DailyFinance
	Employees   []EmployeeEarnings
	Totals      DailyFinance
}

// Add accumulates other into d, keeping d's date.
func (d *DailyFinance) Add(other DailyFinance) {
	d.Orders += other.Orders
	d.Loads += other.Loads
	d.Revenue = d.Revenue.Add(other.Revenue)
	d.Expenses = d.Expenses.Add(other.Expenses)
	d.Salaries = d.Salaries.Add(other.Salaries)
	d.Net = d.Revenue.Sub(d.Expenses).Sub(d.Salaries)
}
