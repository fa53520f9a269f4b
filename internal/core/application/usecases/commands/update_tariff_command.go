package commands

import (
	"errors"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/guard"
)

var ErrUpdateTariffCommandIsNotConstructed = errors.New(
	"UpdateTariffCommand must be created via NewUpdateTariffCommand constructor",
)

// UpdateTariffCommand replaces the rates used for new orders and re-weighing.
// Existing prices are not recomputed.
type UpdateTariffCommand struct { //nolint:recvcheck //using for validation
	tariff pricing.Tariff

	guard guard.ConstructorGuard
}

func NewUpdateTariffCommand(tariff pricing.Tariff) (UpdateTariffCommand, error) {
	if err := tariff.Validate(); err != nil {
		return UpdateTariffCommand{}, err
	}

	return UpdateTariffCommand{
		tariff: tariff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTariffCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTariffCommandIsNotConstructed)
}

func (c UpdateTariffCommand) Tariff() pricing.Tariff {
	return c.tariff
}
