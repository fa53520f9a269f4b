package pricing

import (
	"fmt"
	"strings"

	"laundry/internal/pkg/errs"
)

// ServicePackage is the service tier chosen when the order is created.
type ServicePackage int

const (
	UnknownPackage ServicePackage = iota

	// Package1 is wash, dry and fold only. The customer brings and collects the laundry.
	Package1

	// Package2 adds one-way transport: either pickup or delivery.
	Package2

	// Package3 is all-in: pickup and delivery.
	Package3
)

func getPackageNames() map[ServicePackage]string {
	return map[ServicePackage]string{
		Package1: "package1",
		Package2: "package2",
		Package3: "package3",
	}
}

// ParseServicePackage accepts "package1".."package3" in any letter case.
func ParseServicePackage(s string) (ServicePackage, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for p, name := range getPackageNames() {
		if name == normalized {
			return p, nil
		}
	}
	return UnknownPackage, errs.NewValueIsInvalidErrorWithCause(
		"service package is invalid",
		fmt.Errorf("%q is not one of package1, package2, package3", s),
	)
}

func (p ServicePackage) Validate() error {
	if _, ok := getPackageNames()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"service package is invalid",
			fmt.Errorf("%d is not a valid service package", p),
		)
	}
	return nil
}

func (p ServicePackage) String() string {
	if name, ok := getPackageNames()[p]; ok {
		return name
	}
	return "unknown"
}

// TransportLegs is how many transport trips the package includes.
func (p ServicePackage) TransportLegs() int64 {
	switch p {
	case Package2:
		return 1
	case Package3:
		return 2
	case UnknownPackage, Package1:
		return 0
	}
	return 0
}

// IncludesDelivery reports whether the shop brings the laundry back to the customer.
func (p ServicePackage) IncludesDelivery() bool {
	return p.TransportLegs() > 0
}
