package http

import (
	"errors"

	"laundry/internal/adapters/out/reports"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

var errInvalidBody = errors.New("invalid request body")

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	u, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func toQuote(q queries.QuotePriceQueryResponse) servers.Quote {
	return servers.Quote{
		ServicePackage: servers.ServicePackage(q.ServicePackage.String()),
		Weight:         q.Weight.InexactFloat64(),
		Distance:       q.Distance.InexactFloat64(),
		Loads:          q.Loads,
		BaseCost:       money(q.BaseCost),
		Surcharge:      money(q.Surcharge),
		Price:          money(q.Price),
		Suggestion:     nonEmpty(q.Suggestion),
	}
}

func toOrder(v queries.OrderView) servers.Order {
	o := servers.Order{
		Id:              v.ID.Bytes(),
		Code:            v.Code,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		CustomerAddress: nonEmpty(v.CustomerAddress),
		ServicePackage:  servers.ServicePackage(v.ServicePackage.String()),
		Weight:          v.Weight.InexactFloat64(),
		Distance:        v.Distance.InexactFloat64(),
		Price:           money(v.Price),
		Loads:           v.Loads,
		Status:          servers.OrderStatus(v.Status.String()),
		EmployeeName:    nonEmpty(v.EmployeeName),
		Paid:            v.IsPaid(),
		PaidAt:          v.PaidAt,
		CreatedAt:       v.CreatedAt,
		CompletedAt:     v.CompletedAt,
	}
	if v.EmployeeID != nil {
		id := openapi_types.UUID(v.EmployeeID.Bytes())
		o.EmployeeId = &id
	}
	if v.RatingStars != nil {
		o.Rating = &servers.Rating{Stars: *v.RatingStars, Comment: nonEmpty(v.RatingComment)}
	}
	return o
}

func toReceiptOrder(v queries.OrderView) reports.ReceiptOrder {
	return reports.ReceiptOrder{
		Code:            v.Code,
		CustomerName:    v.CustomerName,
		CustomerPhone:   v.CustomerPhone,
		CustomerAddress: v.CustomerAddress,
		ServicePackage:  v.ServicePackage.String(),
		Weight:          v.Weight,
		Distance:        v.Distance,
		Loads:           v.Loads,
		Price:           v.Price,
		Status:          v.Status.String(),
		EmployeeName:    v.EmployeeName,
		CreatedAt:       v.CreatedAt,
		PaidAt:          v.PaidAt,
	}
}

func toDailyFinance(d finance.DailyFinance, withDate bool) servers.DailyFinance {
	out := servers.DailyFinance{
		Orders:   d.Orders,
		Loads:    d.Loads,
		Revenue:  money(d.Revenue),
		Expenses: money(d.Expenses),
		Salaries: money(d.Salaries),
		Net:      money(d.Net),
	}
	if withDate {
		out.Date = &openapi_types.Date{Time: d.Date}
	}
	return out
}

func toFinanceSummary(s finance.Summary) servers.FinanceSummary {
	out := servers.FinanceSummary{
		From:        openapi_types.Date{Time: s.Period.From()},
		To:          openapi_types.Date{Time: s.Period.To()},
		RatePerLoad: money(s.RatePerLoad),
		Days:        make([]servers.DailyFinance, len(s.Days)),
		Employees:   make([]servers.EmployeeEarnings, len(s.Employees)),
		Totals:      toDailyFinance(s.Totals, false),
	}
	for i, d := range s.Days {
		out.Days[i] = toDailyFinance(d, true)
	}
	for i, e := range s.Employees {
		out.Employees[i] = servers.EmployeeEarnings{
			EmployeeId: e.EmployeeID.Bytes(),
			Name:       e.Name,
			Loads:      e.Loads,
			Earned:     money(e.Earned),
			Paid:       money(e.Paid),
			Balance:    money(e.Balance),
		}
	}
	return out
}

func toTariff(t pricing.Tariff) servers.Tariff {
	return servers.Tariff{
		LoadKilograms:             t.LoadKilograms().InexactFloat64(),
		RatePerKilogram:           t.RatePerKilogram().InexactFloat64(),
		FreeKilometers:            t.FreeKilometers().InexactFloat64(),
		TransportRatePerKilometer: t.TransportRatePerKilometer().InexactFloat64(),
	}
}
