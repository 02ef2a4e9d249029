// Package guard provides a defensive construction check for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value, keeping domain invariants intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes
// a nil validation error. Validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// is "not constructed" and fails validation, so any struct embedding a guard
// cannot be used without going through its constructor.
//
// Example usage:
//
//	type PlaceOrderCommand struct {
//	    customerID kernel.UUID
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewPlaceOrderCommand(customerID kernel.UUID) (PlaceOrderCommand, error) {
//	    // validate inputs...
//	    return PlaceOrderCommand{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns validationError for zero-value guards, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
