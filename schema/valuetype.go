// Package schema describes table columns and the closed set of column value
// types understood by the YT wire protocol.
package schema

import (
	"errors"
	"fmt"
)

// ErrUnknownValueType is returned when a value type name cannot be parsed.
var ErrUnknownValueType = errors.New("unknown value type")

// ValueType is the wire tag of a column value.
type ValueType int

// The numeric values are the codes transmitted on the wire.
const (
	// ValueTypeMin is a sentinel that sorts before any other value.
	ValueTypeMin ValueType = 0x00
	// ValueTypeTheBottom is a sentinel used by the query engine.
	ValueTypeTheBottom ValueType = 0x01
	// ValueTypeNull marks an absent value.
	ValueTypeNull ValueType = 0x02
	// ValueTypeInt64 is a signed 64-bit integer.
	ValueTypeInt64 ValueType = 0x03
	// ValueTypeUint64 is an unsigned 64-bit integer.
	ValueTypeUint64 ValueType = 0x04
	// ValueTypeDouble is an IEEE 754 double.
	ValueTypeDouble ValueType = 0x05
	// ValueTypeBoolean is a boolean.
	ValueTypeBoolean ValueType = 0x06
	// ValueTypeString is an arbitrary byte string.
	ValueTypeString ValueType = 0x10
	// ValueTypeAny is an opaque YSON fragment.
	ValueTypeAny ValueType = 0x11
	// ValueTypeComposite is a YSON fragment of a structured column type.
	ValueTypeComposite ValueType = 0x12
	// ValueTypeMax is a sentinel that sorts after any other value.
	ValueTypeMax ValueType = 0xef
)

//nolint: gochecknoglobals
var valueTypeNames = map[ValueType]string{
	ValueTypeMin:       "min",
	ValueTypeTheBottom: "the_bottom",
	ValueTypeNull:      "null",
	ValueTypeInt64:     "int64",
	ValueTypeUint64:    "uint64",
	ValueTypeDouble:    "double",
	ValueTypeBoolean:   "boolean",
	ValueTypeString:    "string",
	ValueTypeAny:       "any",
	ValueTypeComposite: "composite",
	ValueTypeMax:       "max",
}

func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}

	return "unknown"
}

// IsWireType reports whether values of this type can be transmitted.
// Sentinels and codes outside of the enumeration are not.
func (t ValueType) IsWireType() bool {
	switch t {
	case ValueTypeNull, ValueTypeInt64, ValueTypeUint64, ValueTypeDouble,
		ValueTypeBoolean, ValueTypeString, ValueTypeAny, ValueTypeComposite:
		return true
	default:
		return false
	}
}

// ParseValueType returns the value type with the given name.
func ParseValueType(name string) (ValueType, error) {
	for typ, typName := range valueTypeNames {
		if typName == name {
			return typ, nil
		}
	}

	return ValueTypeMin, fmt.Errorf("%w: %q", ErrUnknownValueType, name)
}

// MarshalText implements encoding.TextMarshaler.
func (t ValueType) MarshalText() ([]byte, error) {
	if _, ok := valueTypeNames[t]; !ok {
		return nil, fmt.Errorf("%w: code %#x", ErrUnknownValueType, int(t))
	}

	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ValueType) UnmarshalText(text []byte) error {
	typ, err := ParseValueType(string(text))
	if err != nil {
		return err
	}

	*t = typ

	return nil
}
