package queries

import (
	"context"

	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/services"
	"laundry/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetFinanceSummaryQueryHandler loads a period's completed orders, expenses and
// salary payments in one read transaction and aggregates them.
type GetFinanceSummaryQueryHandler struct {
	uowFactory  ports.UnitOfWorkFactory
	aggregator  services.FinanceAggregator
	ratePerLoad decimal.Decimal
}

func NewGetFinanceSummaryQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	ratePerLoad decimal.Decimal,
) GetFinanceSummaryQueryHandler {
	return GetFinanceSummaryQueryHandler{
		uowFactory:  uowFactory,
		aggregator:  services.NewFinanceAggregator(),
		ratePerLoad: ratePerLoad,
	}
}

func (h GetFinanceSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetFinanceSummaryQuery,
) (finance.Summary, error) {
	if err := query.Validate(); err != nil {
		return finance.Summary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return finance.Summary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	period := query.Period()

	orders, err := uow.OrderRepository().GetAllCompletedBetween(ctx, period.From(), period.End())
	if err != nil {
		return finance.Summary{}, err
	}

	expenses, err := uow.FinanceRepository().GetExpensesBetween(ctx, period.From(), period.End())
	if err != nil {
		return finance.Summary{}, err
	}

	payments, err := uow.FinanceRepository().GetSalaryPaymentsBetween(ctx, period.From(), period.End())
	if err != nil {
		return finance.Summary{}, err
	}

	employees, err := uow.EmployeeRepository().GetAll(ctx)
	if err != nil {
		return finance.Summary{}, err
	}

	return h.aggregator.Summarize(period, orders, expenses, payments, employees, h.ratePerLoad)
}
