// Package guard provides a defensive construction check for value objects,
// commands and aggregates. Embedding a ConstructorGuard lets a type detect
// whether it was created through its constructor or as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures objects are only created through their designated
// constructor functions. A zero-value guard fails validation; a guard produced
// by NewConstructorGuard passes.
//
// Example usage:
//
//	var ErrSessionNotConstructed = errors.New("Session must be created via NewSession")
//
//	type Session struct {
//	    items []order.LineItem
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSession() *Session {
//	    return &Session{guard: guard.NewConstructorGuard()}
//	}
//
//	func (s *Session) Validate() error {
//	    return s.guard.Validate(ErrSessionNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
