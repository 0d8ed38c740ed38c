// Package wire implements the typed cell values exchanged with YT: plain
// (unversioned) values and values stamped with an MVCC timestamp.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/tarantool/go-ytclient/schema"
	"github.com/tarantool/go-ytclient/ytree"
)

// UnversionedValue is an immutable typed cell value.
//
// The payload is held in its canonical Go form: nil for null, int64, uint64,
// float64, bool, or a private []byte for string, any and composite values.
type UnversionedValue struct {
	id        uint16
	typ       schema.ValueType
	aggregate bool
	value     any
}

var _ ytree.TreeWriter = UnversionedValue{} //nolint:exhaustruct

// NewUnversionedValue validates the payload against typ and returns the value.
//
// Any Go signed integer is accepted for int64, any unsigned integer for uint64,
// float32 and float64 for double, and []byte or string for string, any and
// composite. A null value must have a nil payload. Sentinel types are rejected.
func NewUnversionedValue(id uint16, typ schema.ValueType, aggregate bool, value any) (UnversionedValue, error) {
	normalized, err := normalize(id, typ, value)
	if err != nil {
		return UnversionedValue{}, err
	}

	return UnversionedValue{
		id:        id,
		typ:       typ,
		aggregate: aggregate,
		value:     normalized,
	}, nil
}

//nolint:cyclop
func normalize(id uint16, typ schema.ValueType, value any) (any, error) {
	switch typ {
	case schema.ValueTypeNull:
		if value != nil {
			return nil, errInvalidValue(id, typ, value, "null value must not carry a payload")
		}

		return nil, nil
	case schema.ValueTypeInt64:
		switch v := value.(type) {
		case int:
			return int64(v), nil
		case int8:
			return int64(v), nil
		case int16:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		}
	case schema.ValueTypeUint64:
		switch v := value.(type) {
		case uint:
			return uint64(v), nil
		case uint8:
			return uint64(v), nil
		case uint16:
			return uint64(v), nil
		case uint32:
			return uint64(v), nil
		case uint64:
			return v, nil
		}
	case schema.ValueTypeDouble:
		switch v := value.(type) {
		case float32:
			return float64(v), nil
		case float64:
			return v, nil
		}
	case schema.ValueTypeBoolean:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case schema.ValueTypeString, schema.ValueTypeAny, schema.ValueTypeComposite:
		switch v := value.(type) {
		case []byte:
			return append([]byte{}, v...), nil
		case string:
			return []byte(v), nil
		}
	default:
		return nil, errInvalidValue(id, typ, value, "value type is not representable on the wire")
	}

	return nil, errInvalidValue(id, typ, value, "payload does not match value type")
}

// ID returns the column index of the value within its row.
func (v UnversionedValue) ID() uint16 {
	return v.id
}

// Type returns the value type.
func (v UnversionedValue) Type() schema.ValueType {
	return v.typ
}

// Aggregate reports whether the value is merged into an aggregating column.
func (v UnversionedValue) Aggregate() bool {
	return v.aggregate
}

// Value returns the canonical payload. Byte payloads are returned as a copy.
func (v UnversionedValue) Value() any {
	if b, ok := v.value.([]byte); ok {
		return bytes.Clone(b)
	}

	return v.value
}

// IsNull reports whether the value has the null type.
func (v UnversionedValue) IsNull() bool {
	return v.typ == schema.ValueTypeNull
}

// Equal reports whether both values have the same id, type, aggregate flag
// and payload. Doubles are compared by bit pattern, so NaN equals itself and
// +0 differs from -0. Null values ignore the payload.
func (v UnversionedValue) Equal(other UnversionedValue) bool {
	if v.id != other.id || v.typ != other.typ || v.aggregate != other.aggregate {
		return false
	}

	switch a := v.value.(type) {
	case nil:
		return v.typ == schema.ValueTypeNull || other.value == nil
	case float64:
		b, ok := other.value.(float64)
		return ok && math.Float64bits(a) == math.Float64bits(b)
	case []byte:
		b, ok := other.value.([]byte)
		return ok && bytes.Equal(a, b)
	default:
		return v.value == other.value
	}
}

// Hash returns the xxhash64 of the canonical encoding of the value, so equal
// values always have equal hashes.
func (v UnversionedValue) Hash() uint64 {
	return xxhash.Sum64(v.appendCanonical(make([]byte, 0, 16))) //nolint:mnd
}

func (v UnversionedValue) appendCanonical(buf []byte) []byte {
	buf = binary.LittleEndian.AppendUint16(buf, v.id)
	buf = append(buf, byte(v.typ))

	if v.aggregate {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	switch payload := v.value.(type) {
	case int64:
		buf = binary.LittleEndian.AppendUint64(buf, uint64(payload)) //nolint:gosec
	case uint64:
		buf = binary.LittleEndian.AppendUint64(buf, payload)
	case float64:
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(payload))
	case bool:
		if payload {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case []byte:
		buf = append(buf, payload...)
	}

	return buf
}

// WriteTree emits the payload as a single scalar: an entity for null, the
// matching typed scalar otherwise, and a raw YSON fragment for any and
// composite values.
func (v UnversionedValue) WriteTree(consumer ytree.Consumer) {
	switch payload := v.value.(type) {
	case int64:
		consumer.OnInt64Scalar(payload)
	case uint64:
		consumer.OnUint64Scalar(payload)
	case float64:
		consumer.OnDoubleScalar(payload)
	case bool:
		consumer.OnBooleanScalar(payload)
	case []byte:
		if v.typ == schema.ValueTypeString {
			consumer.OnStringScalar(bytes.Clone(payload))
		} else {
			consumer.OnRaw(bytes.Clone(payload))
		}
	default:
		consumer.OnEntity()
	}
}

// String returns a diagnostic representation of the value.
func (v UnversionedValue) String() string {
	var sb strings.Builder

	sb.WriteString("UnversionedValue{id=")
	sb.WriteString(strconv.FormatUint(uint64(v.id), 10))
	sb.WriteString(", type=")
	sb.WriteString(v.typ.String())
	sb.WriteString(", aggregate=")
	sb.WriteString(strconv.FormatBool(v.aggregate))
	sb.WriteString(", value=")
	sb.WriteString(formatPayload(v.value))
	sb.WriteString("}")

	return sb.String()
}

func formatPayload(value any) string {
	switch payload := value.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(payload, 'g', -1, 64)
	case []byte:
		return strconv.Quote(string(payload))
	default:
		return fmt.Sprint(payload)
	}
}
