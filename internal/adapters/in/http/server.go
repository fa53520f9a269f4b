package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"laundry/internal/adapters/out/reports"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	h        Handlers
	workbook reports.FinanceWorkbook
	receipt  reports.Receipt
	logger   *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, receipt reports.Receipt, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		h:        handlers,
		workbook: reports.NewFinanceWorkbook(),
		receipt:  receipt,
		logger:   logger.With("component", "http"),
	}
}

// QuotePrice handles POST /api/v1/quotes.
func (s *Server) QuotePrice(ctx echo.Context) error {
	var body servers.QuotePriceJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	servicePackage, err := pricing.ParseServicePackage(string(body.ServicePackage))
	if err != nil {
		return s.invalid(ctx, err)
	}

	query, err := queries.NewQuotePriceQuery(servicePackage, body.Weight, valueOr(body.Distance, 0))
	if err != nil {
		return s.invalid(ctx, err)
	}

	quote, err := s.h.QuotePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toQuote(quote))
}

// CreateOrder handles POST /api/v1/orders - places a customer order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	customer, err := order.NewCustomer(body.CustomerName, body.CustomerPhone, valueOr(body.CustomerAddress, ""))
	if err != nil {
		return s.invalid(ctx, err)
	}
	servicePackage, err := pricing.ParseServicePackage(string(body.ServicePackage))
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customer, servicePackage, body.Weight, valueOr(body.Distance, 0),
	)
	if err != nil {
		return s.invalid(ctx, err)
	}

	code, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Code: code.String()})
}

// CreateManualOrder handles POST /api/v1/admin/orders.
func (s *Server) CreateManualOrder(ctx echo.Context) error {
	var body servers.CreateManualOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	customer, err := order.NewCustomer(body.CustomerName, body.CustomerPhone, valueOr(body.CustomerAddress, ""))
	if err != nil {
		return s.invalid(ctx, err)
	}
	servicePackage, err := pricing.ParseServicePackage(string(body.ServicePackage))
	if err != nil {
		return s.invalid(ctx, err)
	}
	employeeID, err := optionalUUID(body.EmployeeId)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewCreateManualOrderCommand(
		kernel.NewUUID(),
		customer,
		servicePackage,
		kernel.NewKilograms(body.Weight),
		kernel.NewKilometers(valueOr(body.Distance, 0)),
		employeeID,
	)
	if err != nil {
		return s.invalid(ctx, err)
	}

	code, err := s.h.CreateManualOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{Code: code.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(string(*params.Status))
		if err != nil {
			return s.invalid(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(status)
	if err != nil {
		return s.invalid(ctx, err)
	}

	views, err := s.h.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(views))
	for i, v := range views {
		response[i] = toOrder(v)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderByCode handles GET /api/v1/orders/{code}.
func (s *Server) GetOrderByCode(ctx echo.Context, code servers.Code) error {
	view, ok, err := s.findOrder(ctx, code)
	if !ok {
		return err
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// GetOrderReceipt handles GET /api/v1/orders/{code}/receipt.
func (s *Server) GetOrderReceipt(ctx echo.Context, code servers.Code) error {
	view, ok, err := s.findOrder(ctx, code)
	if !ok {
		return err
	}

	pdf, err := s.receipt.Generate(toReceiptOrder(view))
	if err != nil {
		return s.fail(ctx, err)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", view.Code+".pdf"))
	return ctx.Blob(http.StatusOK, "application/pdf", pdf)
}

// findOrder reports ok=false after it wrote an error response.
func (s *Server) findOrder(ctx echo.Context, raw string) (queries.OrderView, bool, error) {
	code, err := orderid.Parse(raw)
	if err != nil {
		return queries.OrderView{}, false, s.invalid(ctx, err)
	}

	query, err := queries.NewGetOrderByCodeQuery(code)
	if err != nil {
		return queries.OrderView{}, false, s.invalid(ctx, err)
	}

	view, err := s.h.GetOrderByCode.Handle(ctx.Request().Context(), query)
	if err != nil {
		return queries.OrderView{}, false, s.fail(ctx, err)
	}

	return view, true, nil
}

// AcceptOrder handles POST /api/v1/orders/{code}/accept.
func (s *Server) AcceptOrder(ctx echo.Context, rawCode servers.Code) error {
	var body servers.AcceptOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	code, err := orderid.Parse(rawCode)
	if err != nil {
		return s.invalid(ctx, err)
	}
	employeeID, err := optionalUUID(body.EmployeeId)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(code, employeeID)
	if err != nil {
		return s.invalid(ctx, err)
	}

	permanent, err := s.h.AcceptOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.OrderCreated{Code: permanent.String()})
}

// ChangeOrderStatus handles POST /api/v1/orders/{code}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, rawCode servers.Code) error {
	var body servers.ChangeOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	code, err := orderid.Parse(rawCode)
	if err != nil {
		return s.invalid(ctx, err)
	}
	status, err := order.ParseStatus(string(body.Status))
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(code, status)
	if err != nil {
		return s.invalid(ctx, err)
	}

	return s.noContent(ctx, s.h.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd))
}

// UpdateOrderWeight handles PUT /api/v1/orders/{code}/weight.
func (s *Server) UpdateOrderWeight(ctx echo.Context, rawCode servers.Code) error {
	var body servers.UpdateOrderWeightJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	code, err := orderid.Parse(rawCode)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderWeightCommand(code, kernel.NewKilograms(body.Weight))
	if err != nil {
		return s.invalid(ctx, err)
	}

	return s.noContent(ctx, s.h.UpdateOrderWeight.Handle(ctx.Request().Context(), cmd))
}

// RecordOrderPayment handles POST /api/v1/orders/{code}/payment.
func (s *Server) RecordOrderPayment(ctx echo.Context, rawCode servers.Code) error {
	var body servers.RecordOrderPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	code, err := orderid.Parse(rawCode)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewRecordOrderPaymentCommand(code, decimal.NewFromFloat(body.Amount))
	if err != nil {
		return s.invalid(ctx, err)
	}

	return s.noContent(ctx, s.h.RecordOrderPayment.Handle(ctx.Request().Context(), cmd))
}

// RateOrder handles POST /api/v1/orders/{code}/rating.
func (s *Server) RateOrder(ctx echo.Context, rawCode servers.Code) error {
	var body servers.RateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	code, err := orderid.Parse(rawCode)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewRateOrderCommand(code, body.Stars, valueOr(body.Comment, ""))
	if err != nil {
		return s.invalid(ctx, err)
	}

	return s.noContent(ctx, s.h.RateOrder.Handle(ctx.Request().Context(), cmd))
}

// GetEmployees handles GET /api/v1/employees.
func (s *Server) GetEmployees(ctx echo.Context) error {
	employees, err := s.h.GetAllEmployees.Handle(ctx.Request().Context(), queries.NewGetAllEmployeesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Employee, len(employees))
	for i, e := range employees {
		response[i] = servers.Employee{
			Id:           e.ID.Bytes(),
			Name:         e.Name,
			Phone:        e.Phone,
			Active:       e.Active,
			OrdersInWork: e.OrdersInWork,
			LoadsInWork:  e.LoadsInWork,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateEmployee handles POST /api/v1/employees.
func (s *Server) CreateEmployee(ctx echo.Context) error {
	var body servers.CreateEmployeeJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateEmployeeCommand(id, body.Name, body.Phone)
	if err != nil {
		return s.invalid(ctx, err)
	}

	if err = s.h.CreateEmployee.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.EmployeeCreated{Id: id.Bytes()})
}

// DeactivateEmployee handles DELETE /api/v1/employees/{id}.
func (s *Server) DeactivateEmployee(ctx echo.Context, id openapi_types.UUID) error {
	employeeID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewDeactivateEmployeeCommand(employeeID)
	if err != nil {
		return s.invalid(ctx, err)
	}

	return s.noContent(ctx, s.h.DeactivateEmployee.Handle(ctx.Request().Context(), cmd))
}

// RecordExpense handles POST /api/v1/expenses.
func (s *Server) RecordExpense(ctx echo.Context) error {
	var body servers.RecordExpenseJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	expense, err := finance.NewExpense(
		kernel.NewUUID(), body.Category, decimal.NewFromFloat(body.Amount), body.Date.Time, valueOr(body.Note, ""),
	)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewRecordExpenseCommand(expense)
	if err != nil {
		return s.invalid(ctx, err)
	}

	if err = s.h.RecordExpense.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RecordSalaryPayment handles POST /api/v1/salary-payments.
func (s *Server) RecordSalaryPayment(ctx echo.Context) error {
	var body servers.RecordSalaryPaymentJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	employeeID, err := kernel.UUIDFromBytes(body.EmployeeId[:])
	if err != nil {
		return s.invalid(ctx, err)
	}

	payment, err := finance.NewSalaryPayment(
		kernel.NewUUID(), employeeID, decimal.NewFromFloat(body.Amount), body.Date.Time,
	)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewRecordSalaryPaymentCommand(payment)
	if err != nil {
		return s.invalid(ctx, err)
	}

	if err = s.h.RecordSalaryPayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetFinanceSummary handles GET /api/v1/finance/summary.
func (s *Server) GetFinanceSummary(ctx echo.Context, params servers.GetFinanceSummaryParams) error {
	summary, ok, err := s.financeSummary(ctx, params.From, params.To)
	if !ok {
		return err
	}

	return ctx.JSON(http.StatusOK, toFinanceSummary(summary))
}

// GetFinanceSummaryXlsx handles GET /api/v1/finance/summary.xlsx.
func (s *Server) GetFinanceSummaryXlsx(ctx echo.Context, params servers.GetFinanceSummaryXlsxParams) error {
	summary, ok, err := s.financeSummary(ctx, params.From, params.To)
	if !ok {
		return err
	}

	data, err := s.workbook.Generate(summary)
	if err != nil {
		return s.fail(ctx, err)
	}

	filename := fmt.Sprintf("finance-%s.xlsx", summary.Period.String())
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, xlsxContentType, data)
}

// financeSummary reports ok=false after it wrote an error response.
func (s *Server) financeSummary(
	ctx echo.Context,
	from, to openapi_types.Date,
) (finance.Summary, bool, error) {
	query, err := queries.NewGetFinanceSummaryQuery(from.Time, to.Time)
	if err != nil {
		return finance.Summary{}, false, s.invalid(ctx, err)
	}

	summary, err := s.h.GetFinanceSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return finance.Summary{}, false, s.fail(ctx, err)
	}

	return summary, true, nil
}

// GetTariff handles GET /api/v1/tariff.
func (s *Server) GetTariff(ctx echo.Context) error {
	tariff, err := s.h.GetTariff.Handle(ctx.Request().Context(), queries.NewGetTariffQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTariff(tariff))
}

// UpdateTariff handles PUT /api/v1/tariff.
func (s *Server) UpdateTariff(ctx echo.Context) error {
	var body servers.UpdateTariffJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.invalid(ctx, errInvalidBody)
	}

	tariff, err := pricing.NewTariff(
		decimal.NewFromFloat(body.LoadKilograms),
		decimal.NewFromFloat(body.RatePerKilogram),
		decimal.NewFromFloat(body.FreeKilometers),
		decimal.NewFromFloat(body.TransportRatePerKilometer),
	)
	if err != nil {
		return s.invalid(ctx, err)
	}

	cmd, err := commands.NewUpdateTariffCommand(tariff)
	if err != nil {
		return s.invalid(ctx, err)
	}

	return s.noContent(ctx, s.h.UpdateTariff.Handle(ctx.Request().Context(), cmd))
}

func (s *Server) noContent(ctx echo.Context, err error) error {
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
