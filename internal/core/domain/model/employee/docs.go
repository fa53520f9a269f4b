// Package employee provides the Employee aggregate: the shop staff who accept, wash
// and hand over orders.
//
// Key business rules:
//   - Employees must have a valid identifier, a name and a phone number
//   - Only active employees are assigned new orders
//   - Employees are deactivated, never deleted, so their past orders and salary
//     payments stay attributable
package employee
