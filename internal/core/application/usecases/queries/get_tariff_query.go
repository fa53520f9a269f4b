package queries

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/guard"
)

var ErrGetTariffQueryIsNotConstructed = errors.New(
	"GetTariffQuery must be created via NewGetTariffQuery constructor",
)

// TariffReader returns the active tariff.
type TariffReader interface {
	Get(ctx context.Context) (pricing.Tariff, error)
}

type GetTariffQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTariffQuery() GetTariffQuery {
	return GetTariffQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTariffQuery) Validate() error {
	return q.guard.Validate(ErrGetTariffQueryIsNotConstructed)
}

type GetTariffQueryHandler struct {
	tariffs TariffReader
}

func NewGetTariffQueryHandler(tariffs TariffReader) GetTariffQueryHandler {
	return GetTariffQueryHandler{tariffs: tariffs}
}

func (h GetTariffQueryHandler) Handle(ctx context.Context, query GetTariffQuery) (pricing.Tariff, error) {
	if err := query.Validate(); err != nil {
		return pricing.Tariff{}, err
	}
	return h.tariffs.Get(ctx)
}
