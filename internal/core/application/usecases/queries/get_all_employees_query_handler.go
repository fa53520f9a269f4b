package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAllEmployeesQueryHandler struct {
	db *gorm.DB
}

func NewGetAllEmployeesQueryHandler(db *gorm.DB) GetAllEmployeesQueryHandler {
	return GetAllEmployeesQueryHandler{db: db}
}

// Handle returns active and inactive employees ordered by name. Workload counts
// orders in Accepted, Washing or Ready status.
func (h GetAllEmployeesQueryHandler) Handle(
	ctx context.Context,
	query GetAllEmployeesQuery,
) ([]EmployeeView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	inProgress := []int{int(order.Accepted), int(order.Washing), int(order.Ready)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			e.id,
			e.name,
			e.phone,
			e.active,
			COUNT(o.id),
			COALESCE(SUM(o.loads), 0)
		FROM employees e
		LEFT JOIN orders o ON o.employee_id = e.id AND o.status IN ?
		GROUP BY e.id, e.name, e.phone, e.active
		ORDER BY e.name, e.id
	`, inProgress).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := make([]EmployeeView, 0)
	for rows.Next() {
		var v EmployeeView
		var id uuid.UUID

		if err = rows.Scan(&id, &v.Name, &v.Phone, &v.Active, &v.OrdersInWork, &v.LoadsInWork); err != nil {
			return nil, err
		}

		employeeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		v.ID = employeeID
		employees = append(employees, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
