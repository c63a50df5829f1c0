package gomap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKey is reported when a field name override is blank.
	ErrInvalidKey = errors.New("invalid key")
	// ErrMapKey is reported for maps whose keys are not strings.
	ErrMapKey = errors.New("map key is not a string")
	// ErrCycle is reported when a value refers back to itself.
	ErrCycle = errors.New("circular reference")
)

// MarshalError represents an error during mapping
type MarshalError struct {
	FieldPath string // Field path (e.g., "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("marshal error: %s", e.Message)
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}
