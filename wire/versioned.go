package wire

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/tarantool/go-ytclient/schema"
	"github.com/tarantool/go-ytclient/ytree"
)

const (
	timestampAttribute = "timestamp"
	aggregateAttribute = "aggregate"
)

// VersionedValue is an UnversionedValue stamped with the timestamp of the
// version it belongs to.
type VersionedValue struct {
	value     UnversionedValue
	timestamp Timestamp
}

var _ ytree.TreeWriter = VersionedValue{} //nolint:exhaustruct

// NewVersionedValue validates the payload the same way as NewUnversionedValue
// and stamps the result with timestamp.
func NewVersionedValue(
	id uint16,
	typ schema.ValueType,
	aggregate bool,
	value any,
	timestamp Timestamp,
) (VersionedValue, error) {
	base, err := NewUnversionedValue(id, typ, aggregate, value)
	if err != nil {
		return VersionedValue{}, err
	}

	return NewVersionedValueFrom(base, timestamp), nil
}

// NewVersionedValueFrom stamps an existing value with timestamp.
func NewVersionedValueFrom(value UnversionedValue, timestamp Timestamp) VersionedValue {
	return VersionedValue{
		value:     value,
		timestamp: timestamp,
	}
}

// Unversioned returns the value without its timestamp.
func (v VersionedValue) Unversioned() UnversionedValue {
	return v.value
}

// Timestamp returns the version stamp.
func (v VersionedValue) Timestamp() Timestamp {
	return v.timestamp
}

// ID returns the column index of the value within its row.
func (v VersionedValue) ID() uint16 {
	return v.value.ID()
}

// Type returns the value type.
func (v VersionedValue) Type() schema.ValueType {
	return v.value.Type()
}

// Aggregate reports whether the value is merged into an aggregating column.
func (v VersionedValue) Aggregate() bool {
	return v.value.Aggregate()
}

// Value returns the canonical payload. Byte payloads are returned as a copy.
func (v VersionedValue) Value() any {
	return v.value.Value()
}

// Equal reports whether the unversioned parts are equal and the timestamps match.
func (v VersionedValue) Equal(other VersionedValue) bool {
	return v.timestamp == other.timestamp && v.value.Equal(other.value)
}

// Hash combines the hash of the unversioned part with the timestamp.
func (v VersionedValue) Hash() uint64 {
	var buf [16]byte

	binary.LittleEndian.PutUint64(buf[:8], v.value.Hash())
	binary.LittleEndian.PutUint64(buf[8:], uint64(v.timestamp))

	return xxhash.Sum64(buf[:])
}

// WriteTree emits the timestamp and aggregate flag as attributes followed by
// exactly what the unversioned part emits.
func (v VersionedValue) WriteTree(consumer ytree.Consumer) {
	consumer.OnBeginAttributes()
	consumer.OnKeyedItem(timestampAttribute)
	consumer.OnUint64Scalar(uint64(v.timestamp))
	consumer.OnKeyedItem(aggregateAttribute)
	consumer.OnBooleanScalar(v.value.Aggregate())
	consumer.OnEndAttributes()

	v.value.WriteTree(consumer)
}

// String returns a diagnostic representation of the value.
func (v VersionedValue) String() string {
	return "VersionedValue{" + v.value.String() + ", timestamp=" + v.timestamp.String() + "}"
}
