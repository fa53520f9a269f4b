package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle returns *errs.ObjectNotFoundError when no order has the code.
func (h GetOrderByCodeQueryHandler) Handle(ctx context.Context, query GetOrderByCodeQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(selectOrderViews+" WHERE o.code = ?", query.Code().String()).Row()
	if err := row.Err(); err != nil {
		return OrderView{}, err
	}

	v, err := scanOrderView(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderView{}, errs.NewObjectNotFoundError("order code", query.Code().String())
		}
		return OrderView{}, err
	}

	return v, nil
}
