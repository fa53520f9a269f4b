package queries

import (
	"context"

	"laundry/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

// QuotePriceQueryResponse breaks a price down for display.
type QuotePriceQueryResponse struct {
	ServicePackage pricing.ServicePackage
	Weight         decimal.Decimal
	Distance       decimal.Decimal
	Loads          int
	BaseCost       decimal.Decimal
	Surcharge      decimal.Decimal
	Price          decimal.Decimal
	Suggestion     string
}

// QuotePriceQueryHandler prices an order with the active tariff without storing it.
type QuotePriceQueryHandler struct {
	tariffs TariffReader
}

func NewQuotePriceQueryHandler(tariffs TariffReader) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{tariffs: tariffs}
}

func (h QuotePriceQueryHandler) Handle(ctx context.Context, query QuotePriceQuery) (QuotePriceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuotePriceQueryResponse{}, err
	}

	tariff, err := h.tariffs.Get(ctx)
	if err != nil {
		return QuotePriceQueryResponse{}, err
	}

	in := query.Input()
	result := tariff.ComputePrice(in)

	return QuotePriceQueryResponse{
		ServicePackage: in.ServicePackage(),
		Weight:         in.Weight().Decimal(),
		Distance:       in.Distance().Decimal(),
		Loads:          result.Loads(),
		BaseCost:       result.BaseCost(),
		Surcharge:      result.Surcharge(),
		Price:          result.ComputedPrice(),
		Suggestion:     pricing.Suggest(in),
	}, nil
}
