// Package guard provides ConstructorGuard, a marker embedded in commands, queries and
// value objects so that zero values can be told apart from constructed ones.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the owning value was built by its constructor.
// The zero value is "not constructed".
//
// Example:
//
//	type ReconcileOrderUpdateCommand struct {
//	    notification notification.Notification
//	    guard        guard.ConstructorGuard
//	}
//
//	func (c ReconcileOrderUpdateCommand) Validate() error {
//	    return c.guard.Validate(ErrReconcileOrderUpdateCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
