package commands

import (
	"context"
)

type UpdateTariffCommandHandler struct {
	uowFactory TariffUoWFactory
}

func NewUpdateTariffCommandHandler(uowFactory TariffUoWFactory) UpdateTariffCommandHandler {
	return UpdateTariffCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateTariffCommandHandler) Handle(ctx context.Context, cmd UpdateTariffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TariffRepository().Save(ctx, cmd.Tariff()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
