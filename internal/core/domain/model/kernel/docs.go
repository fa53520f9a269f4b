// Package kernel holds the small value objects shared by every laundry aggregate:
// identifiers (UUID) and the physical quantities an order is priced on
// (Kilograms of laundry, Kilometers of transport).
//
// Quantities clamp invalid input (negative, NaN, infinite) to zero instead of failing,
// so pricing never rejects a syntactically valid request.
package kernel
