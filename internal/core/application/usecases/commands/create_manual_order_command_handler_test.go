package commands_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/employee"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/orderid"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type manualOrderFixture struct {
	uow       *MockUoW
	factory   *MockUoWFactory
	orders    *MockOrderRepository
	employees *MockEmployeeRepository
	tariffs   *MockTariffRepository
	handler   commands.CreateManualOrderCommandHandler
	employee  *employee.Employee
	cmd       commands.CreateManualOrderCommand
}

func newManualOrderFixture(t *testing.T, retries int) *manualOrderFixture {
	t.Helper()
	f := &manualOrderFixture{
		uow:       new(MockUoW),
		factory:   new(MockUoWFactory),
		orders:    new(MockOrderRepository),
		employees: new(MockEmployeeRepository),
		tariffs:   new(MockTariffRepository),
		employee:  createEmployee(t, "Liza"),
	}

	id := f.employee.ID()
	cmd, err := commands.NewCreateManualOrderCommand(
		kernel.NewUUID(), createCustomer(t), pricing.Package1,
		kernel.NewKilograms(5), kernel.Kilometers{}, &id,
	)
	require.NoError(t, err)
	f.cmd = cmd

	f.factory.On("Create").Return(f.uow)
	f.uow.On("OrderRepository").Return(f.orders)
	f.uow.On("EmployeeRepository").Return(f.employees)
	f.uow.On("TariffRepository").Return(f.tariffs)
	f.tariffs.On("Get", mock.Anything).Return(pricing.DefaultTariff(), nil)
	f.employees.On("Get", mock.Anything, id).Return(f.employee, nil)

	f.handler = commands.NewCreateManualOrderCommandHandler(f.factory, orderid.FloorZero, retries, nil)
	return f
}

func TestCreateManualOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newManualOrderFixture(t, commands.DefaultCodeRetries)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("LatestPermanentCode", ctx).Return("RKR041", nil).Once()
	f.orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Code().String() == "RKR042" &&
			o.Status() == order.Accepted &&
			o.Employee().IsEqual(f.employee.ID())
	})).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	code, err := f.handler.Handle(ctx, f.cmd)

	require.NoError(t, err)
	assert.Equal(t, "RKR042", code.String())
	f.orders.AssertExpectations(t)
	f.uow.AssertExpectations(t)
}

func TestCreateManualOrderCommandHandler_Handle_FirstOrderUsesFloor(t *testing.T) {
	ctx := t.Context()
	f := newManualOrderFixture(t, commands.DefaultCodeRetries)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("LatestPermanentCode", ctx).Return("", nil).Once()
	f.orders.On("Add", ctx, mock.MatchedBy(withCode("RKR000"))).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	code, err := f.handler.Handle(ctx, f.cmd)

	require.NoError(t, err)
	assert.Equal(t, "RKR000", code.String())
}

// Another writer stores RKR010 and RKR011 while this one is working.
func TestCreateManualOrderCommandHandler_Handle_RetriesAfterCodeConflict(t *testing.T) {
	ctx := t.Context()
	f := newManualOrderFixture(t, commands.DefaultCodeRetries)

	f.uow.On("Begin", ctx).Return(nil).Twice()
	f.orders.On("LatestPermanentCode", ctx).Return("RKR009", nil).Once()
	f.orders.On("Add", ctx, mock.MatchedBy(withCode("RKR010"))).
		Return(errs.NewObjectAlreadyExistsError("order code", "RKR010")).Once()
	f.orders.On("LatestPermanentCode", ctx).Return("RKR011", nil).Once()
	f.orders.On("Add", ctx, mock.MatchedBy(withCode("RKR012"))).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Twice()

	code, err := f.handler.Handle(ctx, f.cmd)

	require.NoError(t, err)
	assert.Equal(t, "RKR012", code.String())
	f.orders.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateManualOrderCommandHandler_Handle_GivesUpAfterRetries(t *testing.T) {
	ctx := t.Context()
	f := newManualOrderFixture(t, 1)

	f.uow.On("Begin", ctx).Return(nil).Twice()
	f.orders.On("LatestPermanentCode", ctx).Return("RKR009", nil).Twice()
	f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewObjectAlreadyExistsError("order code", "RKR010")).Twice()
	f.uow.On("Rollback", ctx).Return(nil).Twice()

	_, err := f.handler.Handle(ctx, f.cmd)

	require.ErrorIs(t, err, commands.ErrOrderCodeNotAllocated)
	assert.Equal(t, "could not generate order code, please retry", err.Error())
	f.uow.AssertNotCalled(t, "Commit", ctx)
	f.factory.AssertNumberOfCalls(t, "Create", 2)
}

func TestCreateManualOrderCommandHandler_Handle_ConfiguredRetries(t *testing.T) {
	ctx := t.Context()
	f := newManualOrderFixture(t, 3)

	f.uow.On("Begin", ctx).Return(nil)
	f.uow.On("Rollback", ctx).Return(nil)
	f.orders.On("LatestPermanentCode", ctx).Return("RKR001", nil)
	f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewObjectAlreadyExistsError("order code", "RKR002"))

	_, err := f.handler.Handle(ctx, f.cmd)

	require.ErrorIs(t, err, commands.ErrOrderCodeNotAllocated)
	f.factory.AssertNumberOfCalls(t, "Create", 4)
}

func TestCreateManualOrderCommandHandler_Handle_OtherErrorsAreNotRetried(t *testing.T) {
	ctx := t.Context()
	f := newManualOrderFixture(t, commands.DefaultCodeRetries)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("LatestPermanentCode", ctx).Return("RKR009", nil).Once()
	f.orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("connection reset")).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.cmd)

	require.EqualError(t, err, "connection reset")
	f.factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreateManualOrderCommandHandler_Handle_PicksLeastBusyEmployee(t *testing.T) {
	ctx := t.Context()
	busy := createEmployee(t, "Aaron")
	free := createEmployee(t, "Bella")
	busyOrder := createPendingOrder(t)
	require.NoError(t, busyOrder.Accept(orderid.FromNumber(3), busy.ID(), busyOrder.CreatedAt()))

	cmd, err := commands.NewCreateManualOrderCommand(
		kernel.NewUUID(), createCustomer(t), pricing.Package1, kernel.NewKilograms(5), kernel.Kilometers{}, nil,
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	employees := new(MockEmployeeRepository)
	tariffs := new(MockTariffRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders)
	uow.On("EmployeeRepository").Return(employees)
	uow.On("TariffRepository").Return(tariffs)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	tariffs.On("Get", ctx).Return(pricing.DefaultTariff(), nil)
	orders.On("LatestPermanentCode", ctx).Return("RKR003", nil).Once()
	orders.On("GetAllInProgress", ctx).Return([]*order.Order{busyOrder}, nil).Once()
	employees.On("GetAllActive", ctx).Return([]*employee.Employee{busy, free}, nil).Once()
	orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Employee().IsEqual(free.ID())
	})).Return(nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	code, err := commands.NewCreateManualOrderCommandHandler(factory, orderid.FloorZero, 1, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "RKR004", code.String())
	orders.AssertExpectations(t)
}

func TestCreateManualOrderCommandHandler_Handle_NoActiveEmployee(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateManualOrderCommand(
		kernel.NewUUID(), createCustomer(t), pricing.Package1, kernel.NewKilograms(5), kernel.Kilometers{}, nil,
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	employees := new(MockEmployeeRepository)
	tariffs := new(MockTariffRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders)
	uow.On("EmployeeRepository").Return(employees)
	uow.On("TariffRepository").Return(tariffs)
	uow.On("Rollback", ctx).Return(nil).Once()
	tariffs.On("Get", ctx).Return(pricing.DefaultTariff(), nil)
	orders.On("LatestPermanentCode", ctx).Return("", nil).Once()
	orders.On("GetAllInProgress", ctx).Return([]*order.Order{}, nil).Once()
	employees.On("GetAllActive", ctx).Return([]*employee.Employee{}, nil).Once()
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateManualOrderCommandHandler(factory, orderid.FloorZero, 1, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrEmployeeNotFound)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateManualOrderCommandHandler_Handle_InactiveEmployee(t *testing.T) {
	ctx := t.Context()
	f := newManualOrderFixture(t, 1)
	require.NoError(t, f.employee.Deactivate())

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.orders.On("LatestPermanentCode", ctx).Return("", nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()

	_, err := f.handler.Handle(ctx, f.cmd)

	require.ErrorIs(t, err, commands.ErrEmployeeIsNotActive)
}

func TestNewCreateManualOrderCommand_Invalid(t *testing.T) {
	var badEmployee kernel.UUID

	_, err := commands.NewCreateManualOrderCommand(
		kernel.UUID{}, createCustomer(t), pricing.UnknownPackage, kernel.NewKilograms(1), kernel.Kilometers{}, &badEmployee,
	)

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
