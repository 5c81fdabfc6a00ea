package commands

import (
	"context"
)

// AssignCourierCommandHandler orchestrates courier pickup recording.
// Pickup is only meaningful for shipping-company deliveries; the aggregate
// rejects the command for other modes.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignCourierCommandHandler creates a handler for courier pickup
// operations.
func NewAssignCourierCommandHandler(uowFactory OrderUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the courier pickup command.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	if err = aggregate.AssignCourier(cmd.CourierID(), cmd.Actor()); err != nil {
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
