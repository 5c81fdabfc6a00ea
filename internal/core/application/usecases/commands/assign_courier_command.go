package commands

import (
	"errors"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand records which courier picked up a shipment that is
// routed through a shipping company. Assigning the same courier again is a
// no-op.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID
	actor     actor.Actor

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand creates a command to record a courier pickup.
func NewAssignCourierCommand(
	orderID kernel.UUID,
	courierID kernel.UUID,
	by actor.Actor,
) (AssignCourierCommand, error) {
	cmd := AssignCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setActor(by),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignCourierCommandIsNotConstructed if validation fails.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being picked up.
func (c AssignCourierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the identifier of the courier taking the shipment.
func (c AssignCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Actor returns the actor recording the pickup.
func (c AssignCourierCommand) Actor() actor.Actor {
	return c.actor
}

func (c *AssignCourierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCourierCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *AssignCourierCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.actor = by
	return nil
}
