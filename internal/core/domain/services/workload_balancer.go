package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
)

// ErrEmployeeNotFound is returned when there is no active employee to take an order.
var ErrEmployeeNotFound = errors.New("no active employee available")

// WorkloadBalancer picks the employee who takes the next order.
//
// Business rules:
//   - Only active employees are considered
//   - Workload is the number of loads on the employee's Accepted, Washing and Ready orders
//   - The employee with the smallest workload wins; ties go to the first name in
//     alphabetical order, then to the smallest identifier
//
// Example usage:
//
//	balancer := NewWorkloadBalancer()
//	picked, err := balancer.Assign(o, code, employees, inProgress, time.Now())
//	if errors.Is(err, ErrEmployeeNotFound) {
//	    // Nobody can take the order
//	}
type WorkloadBalancer struct{}

func NewWorkloadBalancer() WorkloadBalancer {
	return WorkloadBalancer{}
}

// Assign accepts a pending order under code and gives it to the least busy employee.
func (b WorkloadBalancer) Assign(
	o *order.Order,
	code orderid.Code,
	employees []*employee.Employee,
	inProgress []*order.Order,
	now time.Time,
) (*employee.Employee, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	best, err := b.Pick(employees, inProgress)
	if err != nil {
		return nil, err
	}

	if err = o.Accept(code, best.ID(), now); err != nil {
		return nil, err
	}

	return best, nil
}

// Pick returns the least busy active employee.
func (b WorkloadBalancer) Pick(employees []*employee.Employee, inProgress []*order.Order) (*employee.Employee, error) {
	workload, err := b.Workload(inProgress)
	if err != nil {
		return nil, err
	}

	candidates := make([]*employee.Employee, 0, len(employees))
	for _, e := range employees {
		if err = e.Validate(); err != nil {
			return nil, err
		}
		if e.IsActive() {
			candidates = append(candidates, e)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Name() != candidates[j].Name() {
			return candidates[i].Name() < candidates[j].Name()
		}
		return candidates[i].ID().String() < candidates[j].ID().String()
	})

	var (
		best     *employee.Employee
		bestLoad = math.MaxInt
	)
	for _, e := range candidates {
		if load := workload[e.ID()]; load < bestLoad {
			bestLoad = load
			best = e
		}
	}

	if best == nil {
		return nil, ErrEmployeeNotFound
	}

	return best, nil
}

// Workload sums loads of in-progress orders per employee. Orders in other statuses
// are ignored.
func (b WorkloadBalancer) Workload(orders []*order.Order) (map[kernel.UUID]int, error) {
	workload := make(map[kernel.UUID]int)
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
		if !o.Status().IsInProgress() || o.Employee() == nil {
			continue
		}
		workload[*o.Employee()] += o.Pricing().Loads()
	}
	return workload, nil
}
