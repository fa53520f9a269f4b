package order

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending orders were placed by a customer and wait for staff.
	Pending

	// Accepted orders have a permanent code and a responsible employee.
	Accepted

	// Washing orders are being processed.
	Washing

	// Ready orders wait for pickup or delivery.
	Ready

	// Completed is final; only completed orders count as revenue and can be rated.
	Completed

	// Cancelled is final.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Washing:   "washing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getTransitions lists the allowed next statuses of every non-final status.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // final and unknown statuses have no transitions
	return map[Status][]Status{
		Pending:  {Accepted, Cancelled},
		Accepted: {Washing, Cancelled},
		Washing:  {Ready},
		Ready:    {Completed},
	}
}

// ParseStatus accepts the lower-case names used by the API, in any letter case.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for st, name := range getStatusStrings() {
		if st != Unknown && name == normalized {
			return st, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsFinal reports whether no further transitions are possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// IsInProgress reports whether an employee is currently working on the order.
func (s Status) IsInProgress() bool {
	return s == Accepted || s == Washing || s == Ready
}

// TransitionTo returns next when the lifecycle allows moving from s to next.
func (s Status) TransitionTo(next Status) (Status, error) {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return next, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("cannot move order from %s to %s", s, next),
	)
}

// ValidateCanHaveEmployee checks that in-progress and completed orders have an
// employee and pending orders do not.
func (s Status) ValidateCanHaveEmployee(employee bool) error {
	if employee && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have an employee", s),
		)
	}

	if !employee && (s.IsInProgress() || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no employee", s),
		)
	}

	return nil
}
