package services

import (
	"sort"
	"time"

	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// FinanceAggregator builds the finance summary of a period.
//
// Only completed and paid orders count as revenue, on the day they were completed.
// Employees earn ratePerLoad for every load of those orders.
type FinanceAggregator struct{}

func NewFinanceAggregator() FinanceAggregator {
	return FinanceAggregator{}
}

// Summarize groups revenue, expenses and salary payments by day and by employee.
// Records outside the period are skipped, so callers may pass a wider set.
func (a FinanceAggregator) Summarize(
	period finance.Period,
	orders []*order.Order,
	expenses []*finance.Expense,
	payments []*finance.SalaryPayment,
	employees []*employee.Employee,
	ratePerLoad decimal.Decimal,
) (finance.Summary, error) {
	days := make(map[time.Time]*finance.DailyFinance)
	for _, d := range period.Days() {
		days[d] = &finance.DailyFinance{
			Date:     d,
			Revenue:  decimal.Zero,
			Expenses: decimal.Zero,
			Salaries: decimal.Zero,
			Net:      decimal.Zero,
		}
	}

	earnings := make(map[kernel.UUID]*finance.EmployeeEarnings)
	earningsOf := func(id kernel.UUID) *finance.EmployeeEarnings {
		if e, ok := earnings[id]; ok {
			return e
		}
		e := &finance.EmployeeEarnings{EmployeeID: id, Earned: decimal.Zero, Paid: decimal.Zero}
		earnings[id] = e
		return e
	}
	for _, e := range employees {
		if err := e.Validate(); err != nil {
			return finance.Summary{}, err
		}
		earningsOf(e.ID()).Name = e.Name()
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return finance.Summary{}, err
		}
		if !countsAsRevenue(o) || !period.Contains(*o.CompletedAt()) {
			continue
		}

		day := days[finance.Day(*o.CompletedAt())]
		day.Add(finance.DailyFinance{
			Orders:  1,
			Loads:   o.Pricing().Loads(),
			Revenue: o.Pricing().ComputedPrice(),
		})

		if o.Employee() != nil {
			earningsOf(*o.Employee()).Loads += o.Pricing().Loads()
		}
	}

	for _, e := range expenses {
		if err := e.Validate(); err != nil {
			return finance.Summary{}, err
		}
		if !period.Contains(e.SpentOn()) {
			continue
		}
		days[finance.Day(e.SpentOn())].Add(finance.DailyFinance{Expenses: e.Amount()})
	}

	for _, p := range payments {
		if err := p.Validate(); err != nil {
			return finance.Summary{}, err
		}
		if !period.Contains(p.PaidOn()) {
			continue
		}
		days[finance.Day(p.PaidOn())].Add(finance.DailyFinance{Salaries: p.Amount()})
		earner := earningsOf(p.EmployeeID())
		earner.Paid = earner.Paid.Add(p.Amount())
	}

	summary := finance.Summary{
		Period:      period,
		RatePerLoad: ratePerLoad,
		Totals: finance.DailyFinance{
			Revenue:  decimal.Zero,
			Expenses: decimal.Zero,
			Salaries: decimal.Zero,
			Net:      decimal.Zero,
		},
	}

	for _, d := range period.Days() {
		summary.Days = append(summary.Days, *days[d])
		summary.Totals.Add(*days[d])
	}

	for _, e := range earnings {
		e.Earned = ratePerLoad.Mul(decimal.NewFromInt(int64(e.Loads)))
		e.Balance = e.Earned.Sub(e.Paid)
		summary.Employees = append(summary.Employees, *e)
	}
	sort.Slice(summary.Employees, func(i, j int) bool {
		if summary.Employees[i].Name != summary.Employees[j].Name {
			return summary.Employees[i].Name < summary.Employees[j].Name
		}
		return summary.Employees[i].EmployeeID.String() < summary.Employees[j].EmployeeID.String()
	})

	return summary, nil
}

func countsAsRevenue(o *order.Order) bool {
	return o.Status() == order.Completed && o.IsPaid() && o.CompletedAt() != nil
}
