package queries_test

import (
	"context"
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewQuotePriceQuery_InvalidPackage(t *testing.T) {
	_, err := queries.NewQuotePriceQuery(pricing.UnknownPackage, nil, 0)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestQuotePriceQueryHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		servicePackage pricing.ServicePackage
		weight         *float64
		distance       float64
		wantLoads      int
		wantBase       int64
		wantSurcharge  int64
		wantPrice      int64
		wantSuggestion bool
	}{
		{
			name:           "no weight assumes one kilogram",
			servicePackage: pricing.Package2,
			distance:       3,
			wantLoads:      1,
			wantBase:       1350,
			wantSurcharge:  20,
			wantPrice:      1370,
			wantSuggestion: true,
		},
		{
			name:           "all-in with both legs",
			servicePackage: pricing.Package3,
			weight:         ptr(10.0),
			distance:       4,
			wantLoads:      2,
			wantBase:       1800,
			wantSurcharge:  60,
			wantPrice:      1860,
		},
		{
			name:           "self service ignores distance",
			servicePackage: pricing.Package1,
			weight:         ptr(8.0),
			distance:       5,
			wantLoads:      2,
			wantBase:       1440,
			wantSurcharge:  0,
			wantPrice:      1440,
			wantSuggestion: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tariffs := new(MockTariffReader)
			tariffs.On("Get", mock.Anything).Return(pricing.DefaultTariff(), nil)
			handler := queries.NewQuotePriceQueryHandler(tariffs)

			query, err := queries.NewQuotePriceQuery(tt.servicePackage, tt.weight, tt.distance)
			require.NoError(t, err)

			got, err := handler.Handle(context.Background(), query)

			require.NoError(t, err)
			assert.Equal(t, tt.servicePackage, got.ServicePackage)
			assert.Equal(t, tt.wantLoads, got.Loads)
			assert.True(t, decimal.NewFromInt(tt.wantBase).Equal(got.BaseCost), got.BaseCost.String())
			assert.True(t, decimal.NewFromInt(tt.wantSurcharge).Equal(got.Surcharge), got.Surcharge.String())
			assert.True(t, decimal.NewFromInt(tt.wantPrice).Equal(got.Price), got.Price.String())
			assert.Equal(t, tt.wantSuggestion, got.Suggestion != "")
		})
	}
}

func TestQuotePriceQueryHandler_UsesStoredTariff(t *testing.T) {
	tariff, err := pricing.NewTariff(
		decimal.NewFromInt(8), decimal.NewFromInt(200), decimal.NewFromInt(2), decimal.NewFromInt(15),
	)
	require.NoError(t, err)
	tariffs := new(MockTariffReader)
	tariffs.On("Get", mock.Anything).Return(tariff, nil)

	query, err := queries.NewQuotePriceQuery(pricing.Package3, ptr(16.0), 4)
	require.NoError(t, err)

	got, err := queries.NewQuotePriceQueryHandler(tariffs).Handle(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, 2, got.Loads)
	assert.True(t, decimal.NewFromInt(3260).Equal(got.Price), got.Price.String())
}

func TestQuotePriceQueryHandler_TariffError(t *testing.T) {
	tariffs := new(MockTariffReader)
	tariffs.On("Get", mock.Anything).Return(pricing.Tariff{}, errors.New("db down"))
	query, err := queries.NewQuotePriceQuery(pricing.Package1, nil, 0)
	require.NoError(t, err)

	_, err = queries.NewQuotePriceQueryHandler(tariffs).Handle(context.Background(), query)

	require.EqualError(t, err, "db down")
}

func TestQuotePriceQueryHandler_NotConstructed(t *testing.T) {
	_, err := queries.NewQuotePriceQueryHandler(new(MockTariffReader)).
		Handle(context.Background(), queries.QuotePriceQuery{})

	require.ErrorIs(t, err, queries.ErrQuotePriceQueryIsNotConstructed)
}

func TestGetTariffQueryHandler_Handle(t *testing.T) {
	tariffs := new(MockTariffReader)
	tariffs.On("Get", mock.Anything).Return(pricing.DefaultTariff(), nil)

	got, err := queries.NewGetTariffQueryHandler(tariffs).Handle(context.Background(), queries.NewGetTariffQuery())

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("7.5").Equal(got.LoadKilograms()))
	assert.True(t, decimal.NewFromInt(180).Equal(got.RatePerKilogram()))
	tariffs.AssertExpectations(t)
}

func ptr[T any](v T) *T {
	return &v
}
