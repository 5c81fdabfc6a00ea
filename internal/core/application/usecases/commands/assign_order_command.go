package commands

import (
	"errors"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a manager's request to make an employee
// responsible for an order. Reassignment overwrites the previous assignee.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	assigneeID kernel.UUID
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to assign an order to an employee.
func NewAssignOrderCommand(
	orderID kernel.UUID,
	assigneeID kernel.UUID,
	by actor.Actor,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setAssigneeID(assigneeID),
		cmd.setActor(by),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to assign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AssigneeID returns the identifier of the employee taking responsibility.
func (c AssignOrderCommand) AssigneeID() kernel.UUID {
	return c.assigneeID
}

// Actor returns the manager performing the assignment.
func (c AssignOrderCommand) Actor() actor.Actor {
	return c.actor
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setAssigneeID(assigneeID kernel.UUID) error {
	if err := assigneeID.Validate(); err != nil {
		return err
	}

	c.assigneeID = assigneeID
	return nil
}

func (c *AssignOrderCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.actor = by
	return nil
}
