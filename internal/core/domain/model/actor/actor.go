// Package actor defines who performs operations on an order: an identity plus
// the role it acts in. Actors are value objects; the system of record for staff
// accounts lives outside the core.
package actor

import (
	"errors"

	"printshop/internal/core/domain/model/kernel"
)

// ErrActorIsNotConstructed is returned when an Actor was not created through NewActor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies the person performing an operation and the role they act in.
// Every state-changing order operation takes an Actor, which ends up in the
// audit history and in completed-by stamps.
type Actor struct {
	id   kernel.UUID
	role Role

	isConstructed bool
}

// NewActor creates a validated Actor.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:            id,
		role:          role,
		isConstructed: true,
	}, nil
}

// Validate ensures the Actor was created through NewActor.
func (a Actor) Validate() error {
	if !a.isConstructed {
		return ErrActorIsNotConstructed
	}
	return nil
}

// ID returns the actor's identity.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the role the actor acts in.
func (a Actor) Role() Role {
	return a.role
}

// IsEqual compares actors by identity.
func (a Actor) IsEqual(other Actor) bool {
	return a.id.IsEqual(other.id)
}
