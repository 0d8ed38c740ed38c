package proxy

import (
	"errors"
	"fmt"
)

// ErrUnknownTransactionType is returned for a transaction type outside of the enumeration.
var ErrUnknownTransactionType = errors.New("unknown transaction type")

// NullRequiredFieldError is returned when a mandatory request field is absent.
type NullRequiredFieldError struct {
	Field string
}

// NewNullRequiredFieldError returns an error for the absent field.
func NewNullRequiredFieldError(field string) error {
	return NullRequiredFieldError{Field: field}
}

// Error returns a string representation of the error.
func (e NullRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q is not set", e.Field)
}

// UnsupportedSchemaError is returned when a table schema cannot be represented
// in a rowset descriptor.
type UnsupportedSchemaError struct {
	Column  string
	Index   int
	Problem string
}

func errUnsupportedSchema(column string, index int, problem string) error {
	return UnsupportedSchemaError{
		Column:  column,
		Index:   index,
		Problem: problem,
	}
}

// Error returns a string representation of the error.
func (e UnsupportedSchemaError) Error() string {
	return fmt.Sprintf("unsupported schema: column #%d %q: %s", e.Index, e.Column, e.Problem)
}
