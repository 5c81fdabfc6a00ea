package commands

import (
	"errors"

	"printshop/internal/core/domain/model/actor"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/pkg/guard"
)

var ErrChooseDeliveryModeCommandIsNotConstructed = errors.New(
	"ChooseDeliveryModeCommand must be created via NewChooseDeliveryModeCommand constructor",
)

// ChooseDeliveryModeCommand represents the client's choice of how the
// finished goods leave the shop: direct handover, client collection, or a
// shipping company. Destination is informational; the shipping company name
// is required only for the shipping-company mode.
type ChooseDeliveryModeCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	mode            order.DeliveryMode
	destination     string
	shipmentCompany string
	actor           actor.Actor

	guard guard.ConstructorGuard
}

// NewChooseDeliveryModeCommand creates a command to choose a delivery mode.
// Validates the order ID, mode, and acting actor. The shipping-company
// requirement on the company name is enforced by the delivery value object.
func NewChooseDeliveryModeCommand(
	orderID kernel.UUID,
	mode order.DeliveryMode,
	destination string,
	shipmentCompany string,
	by actor.Actor,
) (ChooseDeliveryModeCommand, error) {
	cmd := ChooseDeliveryModeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMode(mode),
		cmd.setActor(by),
	); err != nil {
		return ChooseDeliveryModeCommand{}, err
	}

	cmd.destination = destination
	cmd.shipmentCompany = shipmentCompany

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChooseDeliveryModeCommandIsNotConstructed if validation fails.
func (c ChooseDeliveryModeCommand) Validate() error {
	return c.guard.Validate(ErrChooseDeliveryModeCommandIsNotConstructed)
}

// OrderID returns the identifier of the order.
func (c ChooseDeliveryModeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Mode returns the chosen delivery mode.
func (c ChooseDeliveryModeCommand) Mode() order.DeliveryMode {
	return c.mode
}

// Destination returns the informational delivery destination.
func (c ChooseDeliveryModeCommand) Destination() string {
	return c.destination
}

// ShipmentCompany returns the shipping company name, if any.
func (c ChooseDeliveryModeCommand) ShipmentCompany() string {
	return c.shipmentCompany
}

// Actor returns the actor choosing the mode.
func (c ChooseDeliveryModeCommand) Actor() actor.Actor {
	return c.actor
}

func (c *ChooseDeliveryModeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChooseDeliveryModeCommand) setMode(mode order.DeliveryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}

	c.mode = mode
	return nil
}

func (c *ChooseDeliveryModeCommand) setActor(by actor.Actor) error {
	if err := by.Validate(); err != nil {
		return err
	}

	c.actor = by
	return nil
}
