package finance

import (
	"fmt"
	"time"

	"laundry/internal/pkg/errs"
)

const (
	// DateLayout is the calendar date format used by the API and reports.
	DateLayout = "2006-01-02"

	// MaxPeriodDays bounds a report range to one leap year.
	MaxPeriodDays = 366
)

// Period is an inclusive range of calendar days.
type Period struct {
	from time.Time
	to   time.Time
}

// NewPeriod truncates both ends to UTC days and requires from <= to and at most
// MaxPeriodDays days in the range.
func NewPeriod(from, to time.Time) (Period, error) {
	p := Period{from: Day(from), to: Day(to)}
	if p.to.Before(p.from) {
		return Period{}, errs.NewValueIsInvalidErrorWithCause(
			"period is invalid",
			fmt.Errorf("%s is after %s", p.from.Format(DateLayout), p.to.Format(DateLayout)),
		)
	}
	if days := p.Len(); days > MaxPeriodDays {
		return Period{}, errs.NewValueIsOutOfRangeError("period days", days, 1, MaxPeriodDays)
	}
	return p, nil
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Period {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Period{from: first, to: first.AddDate(0, 1, -1)}
}

func (p Period) From() time.Time { return p.from }
func (p Period) To() time.Time   { return p.to }

// Contains reports whether t falls on one of the period's days.
func (p Period) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(p.from) && !d.After(p.to)
}

// Len is the number of days in the period.
func (p Period) Len() int {
	return int(p.to.Sub(p.from).Hours()/24) + 1
}

// Days lists every day of the period in order.
func (p Period) Days() []time.Time {
	var days []time.Time
	for d := p.from; !d.After(p.to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// End is the first instant after the period, for half-open range queries.
func (p Period) End() time.Time {
	return p.to.AddDate(0, 0, 1)
}

func (p Period) String() string {
	return p.from.Format(DateLayout) + ".." + p.to.Format(DateLayout)
}

// Day truncates t to midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
