package commands

import (
	"context"
)

// ChooseDeliveryModeCommandHandler orchestrates the delivery mode choice.
type ChooseDeliveryModeCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChooseDeliveryModeCommandHandler creates a handler for delivery mode
// choice operations.
func NewChooseDeliveryModeCommandHandler(uowFactory OrderUoWFactory) ChooseDeliveryModeCommandHandler {
	return ChooseDeliveryModeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery mode choice command.
func (h *ChooseDeliveryModeCommandHandler) Handle(ctx context.Context, cmd ChooseDeliveryModeCommand) error {
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

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChooseDeliveryMode(
		cmd.Mode(), cmd.Destination(), cmd.ShipmentCompany(), cmd.Actor(),
	); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
