// Package guard provides precondition checks for domain objects.
//
// It contains two building blocks:
//   - ConstructorGuard, a defensive pattern that distinguishes objects built
//     through their constructor from zero values
//   - Against* helpers, reusable guard clauses that abort an operation with a
//     typed error from internal/pkg/errs before any state change happens
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding it in a struct makes the zero value detectable:
// a struct literal or uninitialized variable fails Validate, while instances
// produced by the constructor pass.
//
// Domain objects embed the guard and call Validate with their own sentinel:
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the enclosing object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero values it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
