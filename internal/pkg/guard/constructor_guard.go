// Package guard provides the ConstructorGuard pattern used by commands and value
// objects to ensure instances are only created through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects zero-value instantiation of structs that must be built
// through a constructor. Embed one and set it with NewConstructorGuard in the
// constructor; Validate then distinguishes constructed instances from zero values.
//
// Example:
//
//	type ChangeOrderStatusCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewChangeOrderStatusCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
//	    ...
//	    return ChangeOrderStatusCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c ChangeOrderStatusCommand) Validate() error {
//	    return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, the given validationError for a
// zero-value guard, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
