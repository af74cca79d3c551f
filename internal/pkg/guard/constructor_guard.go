// Package guard enforces construction of commands, queries and value objects
// through their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built by its constructor. The zero value
// reports itself as not constructed, so a struct literal fails Validate.
//
// Example:
//
//	type ScheduleDeliveryCommand struct {
//	    date  kernel.Date
//	    guard guard.ConstructorGuard
//	}
//
//	func (c ScheduleDeliveryCommand) Validate() error {
//	    return c.guard.Validate(ErrScheduleDeliveryCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the owner was not created through its constructor.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
