package pricing

import (
	"laundry/internal/core/domain/model/kernel"
)

// ComputeLoads applies the default tariff's 7.5 kg load size.
func ComputeLoads(weight kernel.Kilograms) int {
	return DefaultTariff().ComputeLoads(weight)
}

// ComputePrice applies the default tariff.
func ComputePrice(in PricingInput) PricingResult {
	return DefaultTariff().ComputePrice(in)
}

// Suggest returns advisory text for the selected package, or "" when there is nothing
// to suggest. It never affects the price.
func Suggest(in PricingInput) string {
	switch {
	case in.ServicePackage() == Package2:
		return "Package 3 includes both pickup and delivery for a more convenient experience."
	case in.ServicePackage() == Package1 && !in.Distance().IsZero():
		return "Package 1 does not include transport. Choose package 2 or package 3 to have your laundry delivered."
	default:
		return ""
	}
}
