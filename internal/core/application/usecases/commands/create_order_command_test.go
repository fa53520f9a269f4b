package commands_test

import (
	"errors"
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	weight := 9.0

	cmd, err := commands.NewCreateOrderCommand(id, createCustomer(t), pricing.Package3, &weight, 4)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "9 kg", cmd.Input().Weight().String())
	assert.Equal(t, "4 km", cmd.Input().Distance().String())
}

func TestNewCreateOrderCommand_MissingWeightIsNotInvented(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), createCustomer(t), pricing.Package1, nil, 0)

	require.NoError(t, err)
	assert.True(t, cmd.Input().Weight().IsZero(), cmd.Input().Weight().String())
}

func TestNewCreateOrderCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, createCustomer(t), pricing.UnknownPackage, nil, 0)

	require.Error(t, err)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	weight := 10.0
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), createCustomer(t), pricing.Package3, &weight, 4)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	tariffRepo := new(MockTariffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("Get", ctx).Return(pricing.DefaultTariff(), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.Status() == order.Pending &&
				o.Code().IsPlaceholder() &&
				o.Pricing().ComputedPrice().Equal(decimal.NewFromInt(1860))
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	code, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, code.IsPlaceholder())
	repo.AssertExpectations(t)
	tariffRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_MissingWeightPaysOneLoad(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), createCustomer(t), pricing.Package1, nil, 0)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	tariffRepo := new(MockTariffRepository)
	tariffRepo.On("Get", ctx).Return(pricing.DefaultTariff(), nil).Once()
	repo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.Weight().IsZero() &&
			o.Pricing().Loads() == 1 &&
			o.Pricing().ComputedPrice().Equal(decimal.NewFromInt(1350))
	})).Return(nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TariffRepository").Return(tariffRepo).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Maybe()
	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockPricingUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), createCustomer(t), pricing.Package1, nil, 0)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockPricingUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), createCustomer(t), pricing.Package1, nil, 0)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	tariffRepo := new(MockTariffRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TariffRepository").Return(tariffRepo).Once(),
		tariffRepo.On("Get", ctx).Return(pricing.DefaultTariff(), nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	uow.AssertNotCalled(t, "Commit", ctx)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddressRequiredForDelivery(t *testing.T) {
	ctx := t.Context()
	walkIn, err := order.NewCustomer("Ana", "0917", "")
	require.NoError(t, err)
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), walkIn, pricing.Package2, nil, 3)
	require.NoError(t, err)

	tariffRepo := new(MockTariffRepository)
	tariffRepo.On("Get", ctx).Return(pricing.DefaultTariff(), nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TariffRepository").Return(tariffRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreateOrderCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAddressIsRequired)
	uow.AssertExpectations(t)
}
