// Package order provides the laundry order aggregate.
//
// An order is priced from its service package, weight and distance, carries a
// human-readable code and walks through this lifecycle:
//
//	Pending ──> Accepted ──> Washing ──> Ready ──> Completed
//	   │           │
//	   └───────────┴──> Cancelled
//
// Customer orders start Pending with a placeholder code; the permanent RKR code is
// given exactly once, on acceptance. Orders entered by staff start Accepted with a
// permanent code. Orders are never renumbered.
package order
