package commands

import (
	"context"

	"printshop/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Creates new orders in "Submitted" status with the submission stage already
// stamped complete.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	cmd, _ := NewSubmitOrderCommand(orderID, "ORD-1042", "vinyl banner", "", "", client)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewSubmitOrderCommandHandler(uowFactory OrderUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command.
// Builds the print specification, creates the aggregate, and persists it.
// Uses a transaction to ensure the order is fully stored or rolled back.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	spec, err := order.NewSpecification(cmd.Material(), cmd.Dimensions(), cmd.Colors())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.OrderNumber(), spec, cmd.SubmittedBy())
	if err != nil {
		return err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
