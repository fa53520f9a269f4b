package commands

import (
	"errors"
	"time"

	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand cancels pending orders nobody accepted before cutoff.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewCancelStaleOrdersCommand(cutoff time.Time) (CancelStaleOrdersCommand, error) {
	if cutoff.IsZero() {
		return CancelStaleOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return CancelStaleOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

func (c CancelStaleOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
