package commands

import (
	"context"
)

// AttachDesignLinkCommandHandler orchestrates design link attachment.
type AttachDesignLinkCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAttachDesignLinkCommandHandler creates a handler for design link
// attachment operations.
func NewAttachDesignLinkCommandHandler(uowFactory OrderUoWFactory) AttachDesignLinkCommandHandler {
	return AttachDesignLinkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the design link attachment command.
func (h *AttachDesignLinkCommandHandler) Handle(ctx context.Context, cmd AttachDesignLinkCommand) error {
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

	if err = aggregate.AttachDesignLink(cmd.Link(), cmd.Actor()); err != nil {
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
