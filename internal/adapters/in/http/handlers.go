package http

import (
	"context"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"
)

// Handler is a use case that returns a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// CommandHandler is a use case that only reports success.
type CommandHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers are the use cases the API exposes.
type Handlers struct {
	CreateOrder         Handler[commands.CreateOrderCommand, orderid.Code]
	CreateManualOrder   Handler[commands.CreateManualOrderCommand, orderid.Code]
	AcceptOrder         Handler[commands.AcceptOrderCommand, orderid.Code]
	ChangeOrderStatus   CommandHandler[commands.ChangeOrderStatusCommand]
	UpdateOrderWeight   CommandHandler[commands.UpdateOrderWeightCommand]
	RecordOrderPayment  CommandHandler[commands.RecordOrderPaymentCommand]
	RateOrder           CommandHandler[commands.RateOrderCommand]
	CreateEmployee      CommandHandler[commands.CreateEmployeeCommand]
	DeactivateEmployee  CommandHandler[commands.DeactivateEmployeeCommand]
	RecordExpense       CommandHandler[commands.RecordExpenseCommand]
	RecordSalaryPayment CommandHandler[commands.RecordSalaryPaymentCommand]
	UpdateTariff        CommandHandler[commands.UpdateTariffCommand]

	QuotePrice        Handler[queries.QuotePriceQuery, queries.QuotePriceQueryResponse]
	GetOrders         Handler[queries.GetOrdersQuery, []queries.OrderView]
	GetOrderByCode    Handler[queries.GetOrderByCodeQuery, queries.OrderView]
	GetAllEmployees   Handler[queries.GetAllEmployeesQuery, []queries.EmployeeView]
	GetFinanceSummary Handler[queries.GetFinanceSummaryQuery, finance.Summary]
	GetTariff         Handler[queries.GetTariffQuery, pricing.Tariff]
}
