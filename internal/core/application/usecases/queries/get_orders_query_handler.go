package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler reads order views with raw SQL.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns orders sorted by creation time, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := selectOrderViews
	args := make([]any, 0, 1)
	if s := query.Status(); s != nil {
		stmt += " WHERE o.status = ?"
		args = append(args, int(*s))
	}
	stmt += " ORDER BY o.created_at DESC, o.code DESC"

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]OrderView, 0)
	for rows.Next() {
		v, scanErr := scanOrderView(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
