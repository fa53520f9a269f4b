// Package orderrepo persists order aggregates with gorm.
package orderrepo

import (
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table row. Code carries the unique index the identifier
// allocator relies on to detect two writers taking the same code.
type OrderDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code            string          `gorm:"size:64;not null;uniqueIndex:idx_orders_code"`
	CustomerName    string          `gorm:"not null"`
	CustomerPhone   string          `gorm:"not null"`
	CustomerAddress string          `gorm:"not null;default:''"`
	ServicePackage  int             `gorm:"not null"`
	Weight          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Distance        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Price           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Loads           int             `gorm:"not null"`
	Status          int             `gorm:"not null;index"`
	EmployeeID      *uuid.UUID      `gorm:"type:uuid;index"`
	PaidAt          *time.Time
	RatingStars     *int
	RatingComment   string     `gorm:"not null;default:''"`
	CreatedAt       time.Time  `gorm:"not null;index"`
	CodeAssignedAt  *time.Time `gorm:"index"`
	CompletedAt     *time.Time `gorm:"index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	var employeeID *uuid.UUID
	if s.EmployeeID != nil {
		raw := s.EmployeeID.Bytes()
		employeeID = &raw
	}

	var stars *int
	var comment string
	if s.Rating != nil {
		n := s.Rating.Stars()
		stars = &n
		comment = s.Rating.Comment()
	}

	return OrderDTO{
		ID:              s.ID.Bytes(),
		Code:            s.Code.String(),
		CustomerName:    s.Customer.Name(),
		CustomerPhone:   s.Customer.Phone(),
		CustomerAddress: s.Customer.Address(),
		ServicePackage:  int(s.ServicePackage),
		Weight:          s.Weight.Decimal(),
		Distance:        s.Distance.Decimal(),
		Price:           s.Pricing.ComputedPrice(),
		Loads:           s.Pricing.Loads(),
		Status:          int(s.Status),
		EmployeeID:      employeeID,
		PaidAt:          s.PaidAt,
		RatingStars:     stars,
		RatingComment:   comment,
		CreatedAt:       s.CreatedAt,
		CodeAssignedAt:  s.CodeAssignedAt,
		CompletedAt:     s.CompletedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := orderid.Parse(dto.Code)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.CustomerPhone, dto.CustomerAddress)
	if err != nil {
		return nil, err
	}

	var employeeID *kernel.UUID
	if dto.EmployeeID != nil {
		eID, employeeErr := kernel.UUIDFromBytes((*dto.EmployeeID)[:])
		if employeeErr != nil {
			return nil, employeeErr
		}
		employeeID = &eID
	}

	var rating *order.Rating
	if dto.RatingStars != nil {
		r, ratingErr := order.NewRating(*dto.RatingStars, dto.RatingComment)
		if ratingErr != nil {
			return nil, ratingErr
		}
		rating = &r
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		Code:           code,
		Customer:       customer,
		ServicePackage: pricing.ServicePackage(dto.ServicePackage),
		Weight:         kernel.KilogramsFromDecimal(dto.Weight),
		Distance:       kernel.KilometersFromDecimal(dto.Distance),
		Pricing:        pricing.RestorePricingResult(dto.Price, dto.Loads),
		Status:         order.Status(dto.Status),
		EmployeeID:     employeeID,
		PaidAt:         utc(dto.PaidAt),
		Rating:         rating,
		CreatedAt:      dto.CreatedAt.UTC(),
		CodeAssignedAt: utc(dto.CodeAssignedAt),
		CompletedAt:    utc(dto.CompletedAt),
	})
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
