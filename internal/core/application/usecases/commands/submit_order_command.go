package commands

import (
	"errors"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
	ErrMaterialIsRequired    = errors.New("material is required")
)

// SubmitOrderCommand represents a request to register a new print order.
// Encapsulates the human-readable order number, the print specification,
// and the client submitting the order.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, "ORD-1042", "vinyl banner", "200x80cm", "4/0 CMYK", client)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	orderNumber string
	material    string
	dimensions  string
	colors      string
	submittedBy actor.Actor

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to register a new print order.
// Validates that the order ID is valid, the order number and material are
// not empty, and the submitting actor is constructed.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	material string,
	dimensions string,
	colors string,
	submittedBy actor.Actor,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setMaterial(material),
		cmd.setSubmittedBy(submittedBy),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	cmd.dimensions = dimensions
	cmd.colors = colors

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order number.
func (c SubmitOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// Material returns the requested print material.
func (c SubmitOrderCommand) Material() string {
	return c.material
}

// Dimensions returns the requested dimensions, if provided.
func (c SubmitOrderCommand) Dimensions() string {
	return c.dimensions
}

// Colors returns the requested color configuration, if provided.
func (c SubmitOrderCommand) Colors() string {
	return c.colors
}

// SubmittedBy returns the actor submitting the order.
func (c SubmitOrderCommand) SubmittedBy() actor.Actor {
	return c.submittedBy
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *SubmitOrderCommand) setMaterial(material string) error {
	if material == "" {
		return ErrMaterialIsRequired
	}

	c.material = material
	return nil
}

func (c *SubmitOrderCommand) setSubmittedBy(submittedBy actor.Actor) error {
	if err := submittedBy.Validate(); err != nil {
		return err
	}

	c.submittedBy = submittedBy
	return nil
}
