package commands

import (
	"context"
)

// CompleteSubProcessCommandHandler orchestrates sub-process completion.
// The aggregate enforces the stage registry, authorization, and the
// completed-sub-processes-imply-completed-stage invariant; the handler only
// coordinates the transaction.
type CompleteSubProcessCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteSubProcessCommandHandler creates a handler for sub-process
// completion operations.
func NewCompleteSubProcessCommandHandler(uowFactory OrderUoWFactory) CompleteSubProcessCommandHandler {
	return CompleteSubProcessCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sub-process completion command.
func (h *CompleteSubProcessCommandHandler) Handle(ctx context.Context, cmd CompleteSubProcessCommand) error {
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

	if err = aggregate.CompleteSubProcess(cmd.Stage(), cmd.SubProcess(), cmd.Actor()); err != nil {
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
