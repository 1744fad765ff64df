// Package guard detects values that skipped their constructor.
//
// Commands, queries and value objects embed a ConstructorGuard and call
// Validate before use, so a zero-value struct literal is rejected instead of
// flowing into a handler with unchecked fields.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// provide its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Its zero value fails
// validation.
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is
// nil) if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
