package pricing

import (
	"github.com/shopspring/decimal"
)

// PricingResult is attached to an order at creation and whenever it is re-weighed.
type PricingResult struct {
	baseCost      decimal.Decimal
	surcharge     decimal.Decimal
	computedPrice decimal.Decimal
	loads         int
}

// RestorePricingResult rebuilds a stored result. The breakdown is not persisted, so
// BaseCost and Surcharge are only meaningful on freshly computed results.
func RestorePricingResult(computedPrice decimal.Decimal, loads int) PricingResult {
	return PricingResult{
		computedPrice: computedPrice,
		loads:         loads,
	}
}

func (r PricingResult) ComputedPrice() decimal.Decimal {
	return r.computedPrice
}

func (r PricingResult) Loads() int {
	return r.loads
}

func (r PricingResult) BaseCost() decimal.Decimal {
	return r.baseCost
}

func (r PricingResult) Surcharge() decimal.Decimal {
	return r.surcharge
}
