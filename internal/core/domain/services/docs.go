// Package services provides domain services that work across several aggregates of
// the laundry shop.
//
// The package includes:
//   - WorkloadBalancer: picks the least busy active employee for an order
//   - FinanceAggregator: builds the per-day and per-employee finance summary
package services
