package queries_test

import (
	"context"
	"time"

	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/finance"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockTariffReader struct{ mock.Mock }

func (m *MockTariffReader) Get(ctx context.Context) (pricing.Tariff, error) {
	args := m.Called(ctx)
	return args.Get(0).(pricing.Tariff), args.Error(1)
}

// The repository mocks embed their port so only the methods a query reads need stubs.

type MockOrderRepository struct {
	ports.OrderRepository
	mock.Mock
}

func (m *MockOrderRepository) GetAllCompletedBetween(ctx context.Context, from, to time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockEmployeeRepository struct {
	ports.EmployeeRepository
	mock.Mock
}

func (m *MockEmployeeRepository) GetAll(ctx context.Context) ([]*employee.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*employee.Employee), args.Error(1)
}

type MockFinanceRepository struct {
	ports.FinanceRepository
	mock.Mock
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

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

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

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}
