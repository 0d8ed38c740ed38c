package wire

import (
	"errors"
	"fmt"

	"github.com/tarantool/go-ytclient/schema"
)

// InvalidValueError is returned when a payload does not match its value type.
type InvalidValueError struct {
	ID      uint16
	Type    schema.ValueType
	GoType  string
	Problem string
}

func errInvalidValue(id uint16, typ schema.ValueType, payload any, problem string) error {
	return &InvalidValueError{
		ID:      id,
		Type:    typ,
		GoType:  fmt.Sprintf("%T", payload),
		Problem: problem,
	}
}

// Error returns a string representation of the error.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value for column %d of type %s (payload %s): %s",
		e.ID, e.Type, e.GoType, e.Problem)
}

// EncodingError is returned when a value cannot be encoded.
type EncodingError struct {
	ObjectType string
	Err        error
}

func errEncoding(objectType string, err error) error {
	if err == nil {
		return nil
	}

	return EncodingError{ObjectType: objectType, Err: err}
}

// Error returns a string representation of the error.
func (e EncodingError) Error() string {
	return fmt.Sprintf("failed to encode %s: %s", e.ObjectType, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

// DecodingError is returned when a value cannot be decoded.
type DecodingError struct {
	ObjectType string
	Text       string
	Err        error
}

func errDecoding(objectType, text string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{ObjectType: objectType, Text: text, Err: err}
}

// Error returns a string representation of the error.
func (e DecodingError) Error() string {
	suffix := e.ObjectType
	if e.Text != "" {
		suffix = fmt.Sprintf("%s, %s", suffix, e.Text)
	}

	return fmt.Sprintf("failed to decode %s: %s", suffix, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

var (
	// ErrArrayLength is returned when an encoded value has an unexpected number of fields.
	ErrArrayLength = errors.New("unexpected array length")
	// ErrOutOfRange is returned when an encoded id or type code does not fit its field.
	ErrOutOfRange = errors.New("value out of range")
)
