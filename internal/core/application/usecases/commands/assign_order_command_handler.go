package commands

import (
	"context"
)

// AssignOrderCommandHandler orchestrates assignee changes.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. Only managers may assign; the
// aggregate enforces that along with the terminal-status check.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
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

	if err = aggregate.Assign(cmd.AssigneeID(), cmd.Actor()); err != nil {
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
