package pricing

import (
	"errors"
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	defaultLoadKilograms             = decimal.RequireFromString("7.5")
	defaultRatePerKilogram           = decimal.NewFromInt(180)
	defaultFreeKilometers            = decimal.NewFromInt(1)
	defaultTransportRatePerKilometer = decimal.NewFromInt(10)
)

var ErrTariffIsNotConstructed = errors.New("Tariff must be created via NewTariff or DefaultTariff")

// Tariff holds the configurable rates of the pricing formula.
type Tariff struct { //nolint:recvcheck //using for validation
	loadKilograms             decimal.Decimal
	ratePerKilogram           decimal.Decimal
	freeKilometers            decimal.Decimal
	transportRatePerKilometer decimal.Decimal

	guard guard.ConstructorGuard
}

// DefaultTariff is 7.5 kg per load, 180 per kg, first km free, 10 per km of transport.
func DefaultTariff() Tariff {
	return Tariff{
		loadKilograms:             defaultLoadKilograms,
		ratePerKilogram:           defaultRatePerKilogram,
		freeKilometers:            defaultFreeKilometers,
		transportRatePerKilometer: defaultTransportRatePerKilometer,
		guard:                     guard.NewConstructorGuard(),
	}
}

// NewTariff validates that the load size is positive and no rate is negative.
func NewTariff(
	loadKilograms decimal.Decimal,
	ratePerKilogram decimal.Decimal,
	freeKilometers decimal.Decimal,
	transportRatePerKilometer decimal.Decimal,
) (Tariff, error) {
	t := Tariff{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		t.setLoadKilograms(loadKilograms),
		t.setRatePerKilogram(ratePerKilogram),
		t.setFreeKilometers(freeKilometers),
		t.setTransportRatePerKilometer(transportRatePerKilometer),
	); err != nil {
		return Tariff{}, err
	}

	return t, nil
}

func (t Tariff) Validate() error {
	return t.guard.Validate(ErrTariffIsNotConstructed)
}

func (t Tariff) LoadKilograms() decimal.Decimal             { return t.loadKilograms }
func (t Tariff) RatePerKilogram() decimal.Decimal           { return t.ratePerKilogram }
func (t Tariff) FreeKilometers() decimal.Decimal            { return t.freeKilometers }
func (t Tariff) TransportRatePerKilometer() decimal.Decimal { return t.transportRatePerKilometer }

// ComputeLoads returns max(1, ceil(weight / load size)).
func (t Tariff) ComputeLoads(weight kernel.Kilograms) int {
	loads := weight.Decimal().Div(t.loadKilograms).Ceil().IntPart()
	if loads < 1 {
		return 1
	}
	return int(loads)
}

// BaseCost bills at least one full load; weight above it is billed linearly.
func (t Tariff) BaseCost(weight kernel.Kilograms) decimal.Decimal {
	return decimal.Max(t.loadKilograms, weight.Decimal()).Mul(t.ratePerKilogram)
}

// BillableDistance is the distance beyond the free radius, never negative.
func (t Tariff) BillableDistance(distance kernel.Kilometers) decimal.Decimal {
	return decimal.Max(decimal.Zero, distance.Decimal().Sub(t.freeKilometers))
}

// TransportSurcharge charges the billable distance once per included transport leg.
func (t Tariff) TransportSurcharge(p ServicePackage, distance kernel.Kilometers) decimal.Decimal {
	legs := p.TransportLegs()
	if legs == 0 {
		return decimal.Zero
	}
	return t.BillableDistance(distance).
		Mul(t.transportRatePerKilometer).
		Mul(decimal.NewFromInt(legs))
}

// ComputePrice prices the input. It never fails and has no side effects.
func (t Tariff) ComputePrice(in PricingInput) PricingResult {
	base := t.BaseCost(in.Weight())
	surcharge := t.TransportSurcharge(in.ServicePackage(), in.Distance())

	return PricingResult{
		baseCost:      base,
		surcharge:     surcharge,
		computedPrice: base.Add(surcharge),
		loads:         t.ComputeLoads(in.Weight()),
	}
}

func (t *Tariff) setLoadKilograms(v decimal.Decimal) error {
	if !v.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"load kilograms is invalid", fmt.Errorf("%s is not greater than 0", v))
	}
	t.loadKilograms = v
	return nil
}

func (t *Tariff) setRatePerKilogram(v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"rate per kilogram is invalid", fmt.Errorf("%s is negative", v))
	}
	t.ratePerKilogram = v
	return nil
}

func (t *Tariff) setFreeKilometers(v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"free kilometers is invalid", fmt.Errorf("%s is negative", v))
	}
	t.freeKilometers = v
	return nil
}

func (t *Tariff) setTransportRatePerKilometer(v decimal.Decimal) error {
	if v.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"transport rate per kilometer is invalid", fmt.Errorf("%s is negative", v))
	}
	t.transportRatePerKilometer = v
	return nil
}
