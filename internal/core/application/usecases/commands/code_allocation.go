package commands

import (
	"context"
	"errors"
	"log/slog"

	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/errs"
)

// DefaultCodeRetries is how many times a code conflict is retried before giving up.
const DefaultCodeRetries = 1

// ErrOrderCodeNotAllocated is returned when every attempt to save an order under a
// fresh code hit a code that was already taken.
var ErrOrderCodeNotAllocated = errors.New("could not generate order code, please retry")

// codeAttempt saves an order under code inside uow. It must load whatever it changes
// from uow, since every attempt runs in a new transaction.
type codeAttempt func(ctx context.Context, uow UoW, code orderid.Code) error

// codeAllocation gives orders sequential codes. Each attempt reads the latest code,
// derives the next one and saves; a uniqueness conflict means another writer took
// the same code, so the attempt is repeated with a fresh latest code.
type codeAllocation struct {
	uowFactory UoWFactory
	allocator  orderid.Allocator
	retries    int
	logger     *slog.Logger
}

func newCodeAllocation(uowFactory UoWFactory, floor uint64, retries int, logger *slog.Logger) codeAllocation {
	if retries < 0 {
		retries = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	return codeAllocation{
		uowFactory: uowFactory,
		allocator:  orderid.NewAllocator(floor),
		retries:    retries,
		logger:     logger.With("component", "code_allocation"),
	}
}

// run returns the code the order was actually saved under.
func (a codeAllocation) run(ctx context.Context, attempt codeAttempt) (orderid.Code, error) {
	for i := 0; i <= a.retries; i++ {
		code, err := a.try(ctx, attempt)
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, errs.ErrObjectAlreadyExists) {
			return orderid.Code{}, err
		}

		a.logger.WarnContext(ctx, "order code is taken",
			"code", code.String(),
			"attempt", i+1,
			"error", err)
	}

	return orderid.Code{}, ErrOrderCodeNotAllocated
}

// try returns the attempted code along with any error, for logging.
func (a codeAllocation) try(ctx context.Context, attempt codeAttempt) (orderid.Code, error) {
	uow := a.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return orderid.Code{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	latest, err := uow.OrderRepository().LatestPermanentCode(ctx)
	if err != nil {
		return orderid.Code{}, err
	}

	code := a.allocator.Next(latest)
	if err = attempt(ctx, uow, code); err != nil {
		return code, err
	}

	if err = uow.Commit(ctx); err != nil {
		return code, err
	}

	return code, nil
}
