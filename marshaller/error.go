package marshaller

import (
	"fmt"
)

// MarshalError is returned when a document cannot be encoded.
type MarshalError struct {
	typeName string
	parent   error
}

func errMarshal(typeName string, parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{typeName: typeName, parent: parent}
}

// TypeName returns the Go type that was being marshalled.
func (e MarshalError) TypeName() string {
	return e.typeName
}

// Unwrap returns the error of the underlying encoder.
func (e MarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to marshal %s: %s", e.typeName, e.parent)
}

// UnmarshalError is returned when a document cannot be decoded.
type UnmarshalError struct {
	typeName string
	parent   error
}

func errUnmarshal(typeName string, parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{typeName: typeName, parent: parent}
}

// TypeName returns the Go type that was being unmarshalled.
func (e UnmarshalError) TypeName() string {
	return e.typeName
}

// Unwrap returns the error of the underlying decoder.
func (e UnmarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the error.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("failed to unmarshal %s: %s", e.typeName, e.parent)
}
