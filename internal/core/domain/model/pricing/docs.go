// Package pricing computes what a laundry order costs.
//
// Price = base cost + transport surcharge, where
//   - base cost = max(LoadKilograms, weight) * RatePerKilogram
//     (fractional weight above the floor is billed proportionally)
//   - billable distance = max(0, distance - FreeKilometers)
//   - surcharge = 0 for Package1, billable * TransportRatePerKilometer for Package2,
//     and twice that for Package3 (pickup and delivery)
//
// Loads = max(1, ceil(weight / LoadKilograms)); it is displayed to customers and
// drives employee salaries.
//
// Everything here is pure: no I/O and no shared mutable state.
package pricing
