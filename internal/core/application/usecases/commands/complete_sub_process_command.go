package commands

import (
	"errors"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var (
	ErrCompleteSubProcessCommandIsNotConstructed = errors.New(
		"CompleteSubProcessCommand must be created via NewCompleteSubProcessCommand constructor",
	)
	ErrSubProcessNameIsRequired = errors.New("sub-process name is required")
)

// CompleteSubProcessCommand represents a request to mark one sub-process of a
// production stage as done. Completing an already completed sub-process is a
// no-op, which makes client retries safe.
type CompleteSubProcessCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	stage      order.Stage
	subProcess string
	actor      actor.Actor

	guard guard.ConstructorGuard
}

// NewCompleteSubProcessCommand creates a command to complete a sub-process.
// Validates the order ID, stage, sub-process name, and acting actor. Whether
// the named sub-process belongs to the stage is checked by the aggregate.
func NewCompleteSubProcessCommand(
	orderID kernel.UUID,
	stage order.Stage,
	subProcess string,
	by actor.Actor,
) (CompleteSubProcessCommand, error) {
	cmd := CompleteSubProcessCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStage(stage),
		cmd.setSubProcess(subProcess),
		cmd.setActor(by),
	); err != nil {
		return CompleteSubProcessCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteSubProcessCommandIsNotConstructed if validation fails.
func (c CompleteSubProcessCommand) Validate() error {
	return c.guard.Validate(ErrCompleteSubProcessCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being worked on.
func (c CompleteSubProcessCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Stage returns the production stage the sub-process belongs to.
func (c CompleteSubProcessCommand) Stage() order.Stage {
	return c.stage
}

// SubProcess returns the name of the sub-process to complete.
func (c CompleteSubProcessCommand) SubProcess() string {
	return c.subProcess
}

// Actor returns the actor completing the sub-process.
func (c CompleteSubProcessCommand) Actor() actor.Actor {
	return c.actor
}

func (c *CompleteSubProcessCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CompleteSubProcessCommand) setStage(stage order.Stage) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	c.stage = stage
	return nil
}

func (c *CompleteSubProcessCommand) setSubProcess(subProcess string) error {
	if subProcess == "" {
		return ErrSubProcessNameIsRequired
	}

	c.subProcess = subProcess
	return nil
}

func (c *CompleteSubProcessCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.actor = by
	return nil
}
