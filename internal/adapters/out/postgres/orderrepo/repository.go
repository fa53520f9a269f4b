package orderrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/adapters/out/postgres/pgerrs"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order. A taken code is reported as *errs.ObjectAlreadyExistsError.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return mapWriteError(dto, err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves every column of an existing order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return mapWriteError(dto, result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByCode(ctx context.Context, code orderid.Code) (*order.Order, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order code", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// LatestPermanentCode returns the code assigned most recently. Codes of equal
// assignment time are ordered numerically, so RKR1000 sorts after RKR999.
func (r *GormOrderRepository) LatestPermanentCode(ctx context.Context) (string, error) {
	var codes []string
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("code_assigned_at IS NOT NULL").
		Order("code_assigned_at DESC").
		Order("length(code) DESC").
		Order("code DESC").
		Limit(1).
		Pluck("code", &codes).Error
	if err != nil {
		return "", err
	}

	if len(codes) == 0 {
		return "", nil
	}
	return codes[0], nil
}

func (r *GormOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	return r.find(ctx, "status IN ?", []int{
		int(order.Accepted),
		int(order.Washing),
		int(order.Ready),
	})
}

func (r *GormOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	return r.find(ctx, "status = ? AND created_at < ?", int(order.Pending), t.UTC())
}

func (r *GormOrderRepository) GetAllCompletedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	return r.find(ctx,
		"status = ? AND completed_at >= ? AND completed_at < ?",
		int(order.Completed), from.UTC(), to.UTC(),
	)
}

func (r *GormOrderRepository) find(ctx context.Context, query string, args ...any) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Order("created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func mapWriteError(dto OrderDTO, err error) error {
	if !pgerrs.IsUniqueViolation(err) {
		return err
	}
	if name := pgerrs.ConstraintName(err); name != "" && name != "idx_orders_code" {
		return errs.NewObjectAlreadyExistsErrorWithCause("order", dto.ID.String(), err)
	}
	return errs.NewObjectAlreadyExistsErrorWithCause("order code", dto.Code, err)
}
