package commands

import (
	"errors"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/pkg/guard"
)

var ErrAttachDesignLinkCommandIsNotConstructed = errors.New(
	"AttachDesignLinkCommand must be created via NewAttachDesignLinkCommand constructor",
)

// AttachDesignLinkCommand represents the first phase of the two-phase design
// handoff: the file is uploaded out of band and its link recorded here, after
// which the order may transition to "Design Done". Attaching a link the order
// already holds is a no-op.
type AttachDesignLinkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	link    string
	actor   actor.Actor

	guard guard.ConstructorGuard
}

// NewAttachDesignLinkCommand creates a command to attach a design file link.
func NewAttachDesignLinkCommand(
	orderID kernel.UUID,
	link string,
	by actor.Actor,
) (AttachDesignLinkCommand, error) {
	cmd := AttachDesignLinkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(by),
	); err != nil {
		return AttachDesignLinkCommand{}, err
	}

	// The empty-link check stays in the aggregate so the rule holds for
	// every caller, not only this command.
	cmd.link = link

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAttachDesignLinkCommandIsNotConstructed if validation fails.
func (c AttachDesignLinkCommand) Validate() error {
	return c.guard.Validate(ErrAttachDesignLinkCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c AttachDesignLinkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Link returns the design file link to attach.
func (c AttachDesignLinkCommand) Link() string {
	return c.link
}

// Actor returns the actor attaching the link.
func (c AttachDesignLinkCommand) Actor() actor.Actor {
	return c.actor
}

func (c *AttachDesignLinkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachDesignLinkCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.actor = by
	return nil
}
