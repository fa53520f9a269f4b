package ports

import (
	"context"

	"laundry/internal/core/domain/model/pricing"
)

// TariffRepository stores the single active tariff.
type TariffRepository interface {
	// Get returns the stored tariff, or pricing.DefaultTariff when none was saved.
	Get(ctx context.Context) (pricing.Tariff, error)

	// Save replaces the active tariff.
	Save(ctx context.Context, tariff pricing.Tariff) error
}
