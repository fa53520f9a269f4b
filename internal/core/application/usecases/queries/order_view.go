package queries

import (
	"database/sql"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is the read model of an order, joined with the responsible employee.
type OrderView struct {
	ID              kernel.UUID
	Code            string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	ServicePackage  pricing.ServicePackage
	Weight          decimal.Decimal
	Distance        decimal.Decimal
	Price           decimal.Decimal
	Loads           int
	Status          order.Status
	EmployeeID      *kernel.UUID
	EmployeeName    string
	PaidAt          *time.Time
	RatingStars     *int
	RatingComment   string
	CreatedAt       time.Time
	CompletedAt     *time.Time
}

func (v OrderView) IsPaid() bool {
	return v.PaidAt != nil
}

const selectOrderViews = `
	SELECT
		o.id,
		o.code,
		o.customer_name,
		o.customer_phone,
		o.customer_address,
		o.service_package,
		o.weight,
		o.distance,
		o.price,
		o.loads,
		o.status,
		o.employee_id,
		COALESCE(e.name, ''),
		o.paid_at,
		o.rating_stars,
		o.rating_comment,
		o.created_at,
		o.completed_at
	FROM orders o
	LEFT JOIN employees e ON e.id = o.employee_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderView(row rowScanner) (OrderView, error) {
	var (
		v              OrderView
		id             uuid.UUID
		servicePackage int
		status         int
		employeeID     uuid.NullUUID
		paidAt         sql.NullTime
		ratingStars    sql.NullInt64
		completedAt    sql.NullTime
	)

	err := row.Scan(
		&id,
		&v.Code,
		&v.CustomerName,
		&v.CustomerPhone,
		&v.CustomerAddress,
		&servicePackage,
		&v.Weight,
		&v.Distance,
		&v.Price,
		&v.Loads,
		&status,
		&employeeID,
		&v.EmployeeName,
		&paidAt,
		&ratingStars,
		&v.RatingComment,
		&v.CreatedAt,
		&completedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	v.ID = orderID
	v.ServicePackage = pricing.ServicePackage(servicePackage)
	v.Status = order.Status(status)
	v.CreatedAt = v.CreatedAt.UTC()

	if employeeID.Valid {
		eID, idErr := kernel.UUIDFromBytes(employeeID.UUID[:])
		if idErr != nil {
			return OrderView{}, idErr
		}
		v.EmployeeID = &eID
	}
	if paidAt.Valid {
		t := paidAt.Time.UTC()
		v.PaidAt = &t
	}
	if ratingStars.Valid {
		stars := int(ratingStars.Int64)
		v.RatingStars = &stars
	}
	if completedAt.Valid {
		t := completedAt.Time.UTC()
		v.CompletedAt = &t
	}

	return v, nil
}
