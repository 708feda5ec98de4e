package validation

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every *ArgumentError returned from this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError describes a precondition, format, or range violation.
type ArgumentError struct {
	// Argument is the declared name of the checked argument.
	Argument string
	// Value is the rendered offending value. Empty when the value carries no
	// information (nil pointers, booleans).
	Value string
	// Constraint is the expectation that was not met, e.g. "not a domain".
	Constraint string
}

// Error renders "argument '<name>' is <value> <constraint>".
func (e *ArgumentError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("argument '%s' is %s", e.Argument, e.Constraint)
	}
	return fmt.Sprintf("argument '%s' is %s %s", e.Argument, e.Value, e.Constraint)
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func checkArgument(argument string) error {
	if argument == "" {
		return &ArgumentError{Argument: "argument", Constraint: "empty"}
	}
	return nil
}
