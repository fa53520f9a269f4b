package queries

import (
	"errors"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/guard"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery asks what an order would cost before the laundry is weighed.
// Without a weight, 1 kg is assumed.
type QuotePriceQuery struct { //nolint:recvcheck //using for validation
	input pricing.PricingInput

	guard guard.ConstructorGuard
}

func NewQuotePriceQuery(servicePackage pricing.ServicePackage, weight *float64, distance float64) (QuotePriceQuery, error) {
	input, err := pricing.NewGuidanceInput(servicePackage, weight, distance)
	if err != nil {
		return QuotePriceQuery{}, err
	}

	return QuotePriceQuery{
		input: input,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

func (q QuotePriceQuery) Input() pricing.PricingInput {
	return q.input
}
