// Package guard provides the constructor guard pattern used by domain
// objects to distinguish properly constructed instances from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. Embedding a guard lets Validate methods reject zero-value
// structs that bypassed construction-time validation.
//
// Example:
//
//	type Money struct {
//	    cents int64
//	    guard guard.ConstructorGuard
//	}
//
//	func NewMoney(cents int64) (Money, error) {
//	    if cents < 0 {
//	        return Money{}, errors.New("cents cannot be negative")
//	    }
//	    return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was created through its
// constructor. Otherwise it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}

	if validationError == nil {
		return ErrDefaultConstructorGuard
	}

	return validationError
}
