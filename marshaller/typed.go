package marshaller

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrEmptyDocument is returned when the input holds no YAML document.
var ErrEmptyDocument = errors.New("empty document")

// TypedYamlMarshaller is a YAML marshaller for values of type T. Pointer
// types are allocated on decode, so T may be either a value or a pointer.
type TypedYamlMarshaller[T any] struct{}

var _ TypedMarshaller[struct{}] = TypedYamlMarshaller[struct{}]{}

// NewTypedYamlMarshaller creates a new TypedYamlMarshaller for the specified type.
func NewTypedYamlMarshaller[T any]() TypedYamlMarshaller[T] {
	return TypedYamlMarshaller[T]{}
}

// Marshal serializes data to YAML.
func (m TypedYamlMarshaller[T]) Marshal(data T) ([]byte, error) {
	marshalled, err := yaml.Marshal(data)
	if err != nil {
		return []byte{}, errMarshal(typeName[T](), err)
	}

	return marshalled, nil
}

// Unmarshal deserializes the first YAML document of data.
func (m TypedYamlMarshaller[T]) Unmarshal(data []byte) (T, error) {
	return m.Decode(bytes.NewReader(data))
}

// Decode reads the first YAML document from r.
func (m TypedYamlMarshaller[T]) Decode(r io.Reader) (T, error) {
	var out T

	err := yaml.NewDecoder(r).Decode(&out)
	switch {
	case errors.Is(err, io.EOF):
		return zero[T](), errUnmarshal(typeName[T](), ErrEmptyDocument)
	case err != nil:
		return zero[T](), errUnmarshal(typeName[T](), err)
	}

	return out, nil
}

func zero[T any]() T {
	var out T
	return out
}

func typeName[T any]() string {
	return fmt.Sprintf("%T", (*T)(nil))[1:]
}
