package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization is matched by every *InitializationError.
	ErrInitialization = errors.New("configuration initialization failed")
	// ErrUnsupportedProperty is returned when a properties file holds a value
	// that is neither a scalar nor a nested mapping.
	ErrUnsupportedProperty = errors.New("unsupported property value")
)

// InitializationError reports a bundled resource that exists but could not be
// read completely.
type InitializationError struct {
	Resource string
	Read     int
	Size     int64
	Err      error
}

// Error describes the short read or the underlying I/O failure.
func (e *InitializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("read resource '%s': %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("read %d bytes from resource '%s' of size %d", e.Read, e.Resource, e.Size)
}

// Unwrap returns the underlying I/O error, nil for short reads.
func (e *InitializationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInitialization.
func (e *InitializationError) Is(target error) bool {
	return target == ErrInitialization
}
