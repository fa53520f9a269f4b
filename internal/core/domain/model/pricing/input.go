package pricing

import (
	"laundry/internal/core/domain/model/kernel"
)

// guidanceWeightKilograms stands in for an unknown weight on quote-only requests.
const guidanceWeightKilograms = 1.0

// PricingInput is what a price depends on. It is built per request and never stored.
type PricingInput struct {
	servicePackage ServicePackage
	weight         kernel.Kilograms
	distance       kernel.Kilometers
}

// NewPricingInput rejects an unknown package. Weight and distance are already clamped
// to non-negative values by their kernel constructors.
func NewPricingInput(p ServicePackage, weight kernel.Kilograms, distance kernel.Kilometers) (PricingInput, error) {
	if err := p.Validate(); err != nil {
		return PricingInput{}, err
	}

	return PricingInput{
		servicePackage: p,
		weight:         weight,
		distance:       distance,
	}, nil
}

// NewGuidanceInput is used for quotes shown before the laundry is weighed:
// an absent weight defaults to 1 kg. Final order pricing must use NewPricingInput.
func NewGuidanceInput(p ServicePackage, weight *float64, distance float64) (PricingInput, error) {
	kg := guidanceWeightKilograms
	if weight != nil {
		kg = *weight
	}
	return NewPricingInput(p, kernel.NewKilograms(kg), kernel.NewKilometers(distance))
}

func (in PricingInput) ServicePackage() ServicePackage {
	return in.servicePackage
}

func (in PricingInput) Weight() kernel.Kilograms {
	return in.weight
}

func (in PricingInput) Distance() kernel.Kilometers {
	return in.distance
}
