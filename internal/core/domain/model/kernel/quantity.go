package kernel

import (
	"math"

	"github.com/shopspring/decimal"
)

// Kilograms is a non-negative laundry weight.
// The zero value is a valid 0 kg.
type Kilograms struct {
	value decimal.Decimal
}

// NewKilograms clamps negative, NaN and infinite input to 0.
func NewKilograms(kg float64) Kilograms {
	return Kilograms{value: clamp(kg)}
}

// KilogramsFromDecimal clamps negative input to 0.
func KilogramsFromDecimal(kg decimal.Decimal) Kilograms {
	if kg.IsNegative() {
		return Kilograms{}
	}
	return Kilograms{value: kg}
}

func (k Kilograms) Decimal() decimal.Decimal {
	return k.value
}

func (k Kilograms) Float64() float64 {
	return k.value.InexactFloat64()
}

func (k Kilograms) IsZero() bool {
	return k.value.IsZero()
}

func (k Kilograms) String() string {
	return k.value.String() + " kg"
}

// Kilometers is a non-negative one-way transport distance.
// The zero value is a valid 0 km.
type Kilometers struct {
	value decimal.Decimal
}

// NewKilometers clamps negative, NaN and infinite input to 0.
func NewKilometers(km float64) Kilometers {
	return Kilometers{value: clamp(km)}
}

// KilometersFromDecimal clamps negative input to 0.
func KilometersFromDecimal(km decimal.Decimal) Kilometers {
	if km.IsNegative() {
		return Kilometers{}
	}
	return Kilometers{value: km}
}

func (k Kilometers) Decimal() decimal.Decimal {
	return k.value
}

func (k Kilometers) Float64() float64 {
	return k.value.InexactFloat64()
}

func (k Kilometers) IsZero() bool {
	return k.value.IsZero()
}

func (k Kilometers) String() string {
	return k.value.String() + " km"
}

func clamp(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}
