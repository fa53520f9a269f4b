package cmd

import (
	"log/slog"

	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/adapters/out/postgres/tariffrepo"
	"laundry/internal/adapters/out/reports"
	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/core/ports"
	"laundry/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	tariffs    *tariffrepo.GormTariffRepository
	logger     *slog.Logger
}

// NewCompositionRoot wires use cases to postgres. publisher may be nil.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		tariffs:    tariffrepo.NewGormTariffRepository(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateManualOrderCommandHandler() commands.CreateManualOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateManualOrderCommandHandler(
		f, c.config.OrderCodeFloorManual, c.config.OrderCodeRetries, c.logger,
	)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(
		f, c.config.OrderCodeFloorCustomer, c.config.OrderCodeRetries, c.logger,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderWeightCommandHandler() commands.UpdateOrderWeightCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderWeightCommandHandler(f)
}

func (c *CompositionRoot) CreateRecordOrderPaymentCommandHandler() commands.RecordOrderPaymentCommandHandler {
	return commands.NewRecordOrderPaymentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRateOrderCommandHandler() commands.RateOrderCommandHandler {
	return commands.NewRateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateEmployeeCommandHandler() commands.CreateEmployeeCommandHandler {
	return commands.NewCreateEmployeeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateDeactivateEmployeeCommandHandler() commands.DeactivateEmployeeCommandHandler {
	return commands.NewDeactivateEmployeeCommandHandler(c.employeeUoWFactory())
}

func (c *CompositionRoot) CreateRecordExpenseCommandHandler() commands.RecordExpenseCommandHandler {
	return commands.NewRecordExpenseCommandHandler(c.financeUoWFactory())
}

func (c *CompositionRoot) CreateRecordSalaryPaymentCommandHandler() commands.RecordSalaryPaymentCommandHandler {
	return commands.NewRecordSalaryPaymentCommandHandler(c.financeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTariffCommandHandler() commands.UpdateTariffCommandHandler {
	var f commands.TariffUoWFactory = FuncTariffUoWFactory(func() commands.TariffUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTariffCommandHandler(f)
}

func (c *CompositionRoot) CreateQuotePriceQueryHandler() queries.QuotePriceQueryHandler {
	return queries.NewQuotePriceQueryHandler(c.tariffs)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByCodeQueryHandler() queries.GetOrderByCodeQueryHandler {
	return queries.NewGetOrderByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllEmployeesQueryHandler() queries.GetAllEmployeesQueryHandler {
	return queries.NewGetAllEmployeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetFinanceSummaryQueryHandler() queries.GetFinanceSummaryQueryHandler {
	return queries.NewGetFinanceSummaryQueryHandler(c.uowFactory, c.config.SalaryRatePerLoad)
}

func (c *CompositionRoot) CreateGetTariffQueryHandler() queries.GetTariffQueryHandler {
	return queries.NewGetTariffQueryHandler(c.tariffs)
}

// CreateHTTPHandlers collects the use cases served by the API.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:         c.CreateCreateOrderCommandHandler(),
		CreateManualOrder:   c.CreateCreateManualOrderCommandHandler(),
		AcceptOrder:         c.CreateAcceptOrderCommandHandler(),
		ChangeOrderStatus:   c.CreateChangeOrderStatusCommandHandler(),
		UpdateOrderWeight:   c.CreateUpdateOrderWeightCommandHandler(),
		RecordOrderPayment:  c.CreateRecordOrderPaymentCommandHandler(),
		RateOrder:           c.CreateRateOrderCommandHandler(),
		CreateEmployee:      c.CreateCreateEmployeeCommandHandler(),
		DeactivateEmployee:  c.CreateDeactivateEmployeeCommandHandler(),
		RecordExpense:       c.CreateRecordExpenseCommandHandler(),
		RecordSalaryPayment: c.CreateRecordSalaryPaymentCommandHandler(),
		UpdateTariff:        c.CreateUpdateTariffCommandHandler(),

		QuotePrice:        c.CreateQuotePriceQueryHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetOrderByCode:    c.CreateGetOrderByCodeQueryHandler(),
		GetAllEmployees:   c.CreateGetAllEmployeesQueryHandler(),
		GetFinanceSummary: c.CreateGetFinanceSummaryQueryHandler(),
		GetTariff:         c.CreateGetTariffQueryHandler(),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), reports.NewReceipt(c.config.ShopName), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewStaleOrderJob(
			c.CreateCancelStaleOrdersCommandHandler(),
			c.config.StaleOrderAfter,
			c.config.StaleOrderSchedule,
			c.logger,
		),
		jobs.NewFinanceReportJob(
			c.CreateGetFinanceSummaryQueryHandler(),
			reports.NewFinanceWorkbook(),
			c.config.ReportDir,
			c.config.ReportSchedule,
			c.logger,
		),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) employeeUoWFactory() commands.EmployeeUoWFactory {
	return FuncEmployeeUoWFactory(func() commands.EmployeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) financeUoWFactory() commands.FinanceUoWFactory {
	return FuncFinanceUoWFactory(func() commands.FinanceUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncTariffUoWFactory func() commands.TariffUoW

func (f FuncTariffUoWFactory) Create() commands.TariffUoW {
	return f()
}

type FuncEmployeeUoWFactory func() commands.EmployeeUoW

func (f FuncEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return f()
}

type FuncFinanceUoWFactory func() commands.FinanceUoW

func (f FuncFinanceUoWFactory) Create() commands.FinanceUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
