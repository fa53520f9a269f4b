package order

import (
	"errors"
	"fmt"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"
	"laundry/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by one of its
	// constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewCustomerOrder, NewManualOrder or RestoreOrder")

	ErrAddressIsRequired     = errs.NewValueIsRequiredError("address is required for packages with transport")
	ErrCodeIsNotPermanent    = errs.NewValueIsInvalidError("order code must be a permanent RKR code")
	ErrAcceptRequiresCode    = errs.NewValueIsInvalidError("orders move to accepted only through Accept")
	ErrOrderIsAlreadyPaid    = errs.NewValueIsInvalidError("order is already paid")
	ErrOrderIsAlreadyRated   = errs.NewValueIsInvalidError("order is already rated")
	ErrOrderCannotBeRated    = errs.NewValueIsInvalidError("only completed orders can be rated")
	ErrOrderCannotBeRepriced = errs.NewValueIsInvalidError("order can no longer be re-weighed")
	ErrPaidOrderIsFinal      = errs.NewValueIsInvalidError("paid orders cannot be re-weighed")
	ErrOrderCannotBePaid     = errs.NewValueIsInvalidError("cancelled orders cannot be paid")
)

// Order is the aggregate root of a customer's laundry job.
//
// Invariants:
//   - the pricing result always matches package, weight and distance under the
//     tariff that was applied last
//   - packages with transport have a customer address
//   - pending orders have a placeholder code and no employee; every other non-cancelled
//     order has a permanent code and an employee
//   - the permanent code, once set, never changes
type Order struct {
	id             kernel.UUID
	code           orderid.Code
	customer       Customer
	servicePackage pricing.ServicePackage
	weight         kernel.Kilograms
	distance       kernel.Kilometers
	pricing        pricing.PricingResult
	status         Status
	employeeID     *kernel.UUID
	paidAt         *time.Time
	rating         *Rating
	createdAt      time.Time
	codeAssignedAt *time.Time
	completedAt    *time.Time
	events         []StatusChanged

	guard guard.ConstructorGuard
}

// Snapshot is the flat state of an order, used to persist and restore it.
type Snapshot struct {
	ID             kernel.UUID
	Code           orderid.Code
	Customer       Customer
	ServicePackage pricing.ServicePackage
	Weight         kernel.Kilograms
	Distance       kernel.Kilometers
	Pricing        pricing.PricingResult
	Status         Status
	EmployeeID     *kernel.UUID
	PaidAt         *time.Time
	Rating         *Rating
	CreatedAt      time.Time
	CodeAssignedAt *time.Time
	CompletedAt    *time.Time
}

// NewCustomerOrder creates a Pending order with a placeholder code, priced with tariff.
func NewCustomerOrder(
	id kernel.UUID,
	customer Customer,
	in pricing.PricingInput,
	tariff pricing.Tariff,
	now time.Time,
) (*Order, error) {
	o, err := newOrder(id, customer, in, tariff, now)
	if err != nil {
		return nil, err
	}

	o.code = orderid.NewPlaceholder()
	o.status = Pending
	o.raiseStatusChanged(Unknown, now)
	return o, nil
}

// NewManualOrder creates an order entered by staff: it is Accepted straight away, with
// a permanent code and a responsible employee.
func NewManualOrder(
	id kernel.UUID,
	code orderid.Code,
	customer Customer,
	in pricing.PricingInput,
	tariff pricing.Tariff,
	employeeID kernel.UUID,
	now time.Time,
) (*Order, error) {
	o, err := newOrder(id, customer, in, tariff, now)
	if err != nil {
		return nil, err
	}

	o.status = Pending
	if err = o.Accept(code, employeeID, now); err != nil {
		return nil, err
	}
	o.ClearDomainEvents()
	o.raiseStatusChanged(Unknown, now)
	return o, nil
}

// RestoreOrder rebuilds an order from persistence, checking the stored state is
// consistent.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		customer:       s.Customer,
		servicePackage: s.ServicePackage,
		weight:         s.Weight,
		distance:       s.Distance,
		pricing:        s.Pricing,
		paidAt:         s.PaidAt,
		rating:         s.Rating,
		createdAt:      s.CreatedAt,
		codeAssignedAt: s.CodeAssignedAt,
		completedAt:    s.CompletedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setCode(s.Code),
		o.setStatus(s.Status, s.EmployeeID),
		s.ServicePackage.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func newOrder(
	id kernel.UUID,
	customer Customer,
	in pricing.PricingInput,
	tariff pricing.Tariff,
	now time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer, in.ServicePackage()),
		tariff.Validate(),
		in.ServicePackage().Validate(),
	); err != nil {
		return nil, err
	}

	o.applyPricing(tariff, in)
	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by internal identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                        { return o.id }
func (o *Order) Code() orderid.Code                     { return o.code }
func (o *Order) Customer() Customer                     { return o.customer }
func (o *Order) ServicePackage() pricing.ServicePackage { return o.servicePackage }
func (o *Order) Weight() kernel.Kilograms               { return o.weight }
func (o *Order) Distance() kernel.Kilometers            { return o.distance }
func (o *Order) Pricing() pricing.PricingResult         { return o.pricing }
func (o *Order) Status() Status                         { return o.status }
func (o *Order) CreatedAt() time.Time                   { return o.createdAt }
func (o *Order) IsPaid() bool                           { return o.paidAt != nil }

// Employee returns the responsible employee, nil while pending.
func (o *Order) Employee() *kernel.UUID {
	return o.employeeID
}

func (o *Order) Rating() *Rating {
	return o.rating
}

func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

func (o *Order) CodeAssignedAt() *time.Time {
	return o.codeAssignedAt
}

func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Snapshot returns the flat state of the order.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:             o.id,
		Code:           o.code,
		Customer:       o.customer,
		ServicePackage: o.servicePackage,
		Weight:         o.weight,
		Distance:       o.distance,
		Pricing:        o.pricing,
		Status:         o.status,
		EmployeeID:     o.employeeID,
		PaidAt:         o.paidAt,
		Rating:         o.rating,
		CreatedAt:      o.createdAt,
		CodeAssignedAt: o.codeAssignedAt,
		CompletedAt:    o.completedAt,
	}
}

// Accept gives a pending order its permanent code and responsible employee.
// This is the only place a placeholder code is replaced.
func (o *Order) Accept(code orderid.Code, employeeID kernel.UUID, now time.Time) error {
	if err := employeeID.Validate(); err != nil {
		return err
	}
	if code.IsZero() || code.IsPlaceholder() {
		return ErrCodeIsNotPermanent
	}

	next, err := o.status.TransitionTo(Accepted)
	if err != nil {
		return err
	}

	assignedAt := now.UTC()
	o.code = code
	o.codeAssignedAt = &assignedAt
	o.employeeID = &employeeID
	previous := o.status
	o.status = next
	o.raiseStatusChanged(previous, now)
	return nil
}

// ChangeStatus moves the order along its lifecycle. Acceptance needs a code and
// goes through Accept instead.
func (o *Order) ChangeStatus(next Status, now time.Time) error {
	if next == Accepted {
		return ErrAcceptRequiresCode
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	if newStatus == Completed {
		completedAt := now.UTC()
		o.completedAt = &completedAt
	}
	previous := o.status
	o.status = newStatus
	o.raiseStatusChanged(previous, now)
	return nil
}

// Reprice records the weighed laundry and recomputes the price. It is allowed until
// the laundry is ready.
func (o *Order) Reprice(tariff pricing.Tariff, weight kernel.Kilograms) error {
	if o.status != Pending && o.status != Accepted && o.status != Washing {
		return ErrOrderCannotBeRepriced
	}
	if o.paidAt != nil {
		return ErrPaidOrderIsFinal
	}
	if err := tariff.Validate(); err != nil {
		return err
	}

	in, err := pricing.NewPricingInput(o.servicePackage, weight, o.distance)
	if err != nil {
		return err
	}

	o.applyPricing(tariff, in)
	return nil
}

// RecordPayment marks the order paid. Payments are recorded, not processed, and must
// cover exactly the computed price.
func (o *Order) RecordPayment(amount decimal.Decimal, now time.Time) error {
	if o.status == Cancelled {
		return ErrOrderCannotBePaid
	}
	if o.paidAt != nil {
		return ErrOrderIsAlreadyPaid
	}
	if !amount.Equal(o.pricing.ComputedPrice()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment amount is invalid",
			fmt.Errorf("%s does not match order price %s", amount, o.pricing.ComputedPrice()),
		)
	}

	paidAt := now.UTC()
	o.paidAt = &paidAt
	return nil
}

// Rate stores the customer's rating of a completed order. An order is rated once.
func (o *Order) Rate(r Rating) error {
	if o.status != Completed {
		return ErrOrderCannotBeRated
	}
	if o.rating != nil {
		return ErrOrderIsAlreadyRated
	}
	if _, err := NewRating(r.Stars(), r.Comment()); err != nil {
		return err
	}

	o.rating = &r
	return nil
}

func (o *Order) applyPricing(tariff pricing.Tariff, in pricing.PricingInput) {
	o.servicePackage = in.ServicePackage()
	o.weight = in.Weight()
	o.distance = in.Distance()
	o.pricing = tariff.ComputePrice(in)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code orderid.Code) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setCustomer(c Customer, p pricing.ServicePackage) error {
	if c.Name() == "" {
		return ErrCustomerNameIsRequired
	}
	if p.IncludesDelivery() && c.Address() == "" {
		return ErrAddressIsRequired
	}
	o.customer = c
	return nil
}

func (o *Order) setStatus(s Status, employeeID *kernel.UUID) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := s.ValidateCanHaveEmployee(employeeID != nil); err != nil {
		return err
	}
	if s != Pending && s != Cancelled && o.code.IsPlaceholder() {
		return ErrCodeIsNotPermanent
	}
	o.status = s
	o.employeeID = employeeID
	return nil
}
