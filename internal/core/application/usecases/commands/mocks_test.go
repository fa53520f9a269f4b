package commands_test

import (
	"context"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return orderOrNil(args), args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code orderid.Code) (*order.Order, error) {
	args := m.Called(ctx, code)
	return orderOrNil(args), args.Error(1)
}

func (m *MockOrderRepository) LatestPermanentCode(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockOrderRepository) GetAllInProgress(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return ordersOrNil(args), args.Error(1)
}

func (m *MockOrderRepository) GetAllPendingCreatedBefore(ctx context.Context, t time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, t)
	return ordersOrNil(args), args.Error(1)
}

func (m *MockOrderRepository) GetAllCompletedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	return ordersOrNil(args), args.Error(1)
}

func orderOrNil(args mock.Arguments) *order.Order {
	if v := args.Get(0); v != nil {
		return v.(*order.Order)
	}
	return nil
}

func ordersOrNil(args mock.Arguments) []*order.Order {
	if v := args.Get(0); v != nil {
		return v.([]*order.Order)
	}
	return nil
}

type MockEmployeeRepository struct{ mock.Mock }

func (m *MockEmployeeRepository) Add(ctx context.Context, e *employee.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, e *employee.Employee) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockEmployeeRepository) Get(ctx context.Context, id kernel.UUID) (*employee.Employee, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*employee.Employee), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) GetAll(ctx context.Context) ([]*employee.Employee, error) {
	args := m.Called(ctx)
	return employeesOrNil(args), args.Error(1)
}

func (m *MockEmployeeRepository) GetAllActive(ctx context.Context) ([]*employee.Employee, error) {
	args := m.Called(ctx)
	return employeesOrNil(args), args.Error(1)
}

func employeesOrNil(args mock.Arguments) []*employee.Employee {
	if v := args.Get(0); v != nil {
		return v.([]*employee.Employee)
	}
	return nil
}

type MockFinanceRepository struct{ mock.Mock }

func (m *MockFinanceRepository) AddExpense(ctx context.Context, e *finance.Expense) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockFinanceRepository) AddSalaryPayment(ctx context.Context, p *finance.SalaryPayment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockFinanceRepository) GetExpensesBetween(ctx context.Context, from, to time.Time) ([]*finance.Expense, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*finance.Expense), args.Error(1)
}

func (m *MockFinanceRepository) GetSalaryPaymentsBetween(
	ctx context.Context,
	from, to time.Time,
) ([]*finance.SalaryPayment, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*finance.SalaryPayment), args.Error(1)
}

type MockTariffRepository struct{ mock.Mock }

func (m *MockTariffRepository) Get(ctx context.Context) (pricing.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.Tariff), args.Error(1)
}

func (m *MockTariffRepository) Save(ctx context.Context, t pricing.Tariff) error {
	return m.Called(ctx, t).Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) EmployeeRepository() ports.EmployeeRepository {
	return m.Called().Get(0).(ports.EmployeeRepository)
}

func (m *MockUoW) FinanceRepository() ports.FinanceRepository {
	return m.Called().Get(0).(ports.FinanceRepository)
}

func (m *MockUoW) TariffRepository() ports.TariffRepository {
	return m.Called().Get(0).(ports.TariffRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	return m.Called().Get(0).(commands.PricingUoW)
}

type MockTariffUoWFactory struct{ mock.Mock }

func (m *MockTariffUoWFactory) Create() commands.TariffUoW {
	return m.Called().Get(0).(commands.TariffUoW)
}

type MockEmployeeUoWFactory struct{ mock.Mock }

func (m *MockEmployeeUoWFactory) Create() commands.EmployeeUoW {
	return m.Called().Get(0).(commands.EmployeeUoW)
}

type MockFinanceUoWFactory struct{ mock.Mock }

func (m *MockFinanceUoWFactory) Create() commands.FinanceUoW {
	return m.Called().Get(0).(commands.FinanceUoW)
}
