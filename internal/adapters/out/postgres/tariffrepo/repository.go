// Package tariffrepo persists the single active tariff with gorm.
package tariffrepo

import (
	"context"
	"errors"
	"time"

	"laundry/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// activeTariffID is the primary key of the only row in the tariffs table.
const activeTariffID = 1

type TariffDTO struct {
	ID                        int             `gorm:"primaryKey;autoIncrement:false"`
	LoadKilograms             decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	RatePerKilogram           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	FreeKilometers            decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	TransportRatePerKilometer decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	UpdatedAt                 time.Time
}

func (TariffDTO) TableName() string {
	return "tariffs"
}

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// Get returns the stored tariff, falling back to pricing.DefaultTariff.
func (r *GormTariffRepository) Get(ctx context.Context) (pricing.Tariff, error) {
	var dto TariffDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", activeTariffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.DefaultTariff(), nil
		}
		return pricing.Tariff{}, err
	}

	return pricing.NewTariff(
		dto.LoadKilograms,
		dto.RatePerKilogram,
		dto.FreeKilometers,
		dto.TransportRatePerKilometer,
	)
}

func (r *GormTariffRepository) Save(ctx context.Context, tariff pricing.Tariff) error {
	if err := tariff.Validate(); err != nil {
		return err
	}

	dto := TariffDTO{
		ID:                        activeTariffID,
		LoadKilograms:             tariff.LoadKilograms(),
		RatePerKilogram:           tariff.RatePerKilogram(),
		FreeKilometers:            tariff.FreeKilometers(),
		TransportRatePerKilometer: tariff.TransportRatePerKilometer(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
