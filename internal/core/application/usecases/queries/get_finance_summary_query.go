package queries

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/finance"
	"laundry/internal/pkg/guard"
)

var ErrGetFinanceSummaryQueryIsNotConstructed = errors.New(
	"GetFinanceSummaryQuery must be created via NewGetFinanceSummaryQuery constructor",
)

// GetFinanceSummaryQuery covers the days from..to, both inclusive.
type GetFinanceSummaryQuery struct {
	period finance.Period

	guard guard.ConstructorGuard
}

func NewGetFinanceSummaryQuery(from, to time.Time) (GetFinanceSummaryQuery, error) {
	period, err := finance.NewPeriod(from, to)
	if err != nil {
		return GetFinanceSummaryQuery{}, err
	}

	return GetFinanceSummaryQuery{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetFinanceSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetFinanceSummaryQueryIsNotConstructed)
}

func (q GetFinanceSummaryQuery) Period() finance.Period {
	return q.period
}
