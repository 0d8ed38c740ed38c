package wire

import (
	"fmt"
	"math"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-ytclient/schema"
)

const (
	unversionedArrayLen = 4
	versionedArrayLen   = 5
)

var (
	_ msgpack.CustomEncoder = UnversionedValue{}  //nolint:exhaustruct
	_ msgpack.CustomDecoder = &UnversionedValue{} //nolint:exhaustruct
	_ msgpack.CustomEncoder = VersionedValue{}    //nolint:exhaustruct
	_ msgpack.CustomDecoder = &VersionedValue{}   //nolint:exhaustruct
)

// EncodeMsgpack writes the value as [id, type, aggregate, payload].
func (v UnversionedValue) EncodeMsgpack(encoder *msgpack.Encoder) error {
	err := encoder.EncodeArrayLen(unversionedArrayLen)
	if err != nil {
		return errEncoding("unversioned value", err)
	}

	return v.encodeFields(encoder)
}

func (v UnversionedValue) encodeFields(encoder *msgpack.Encoder) error {
	err := encoder.EncodeUint(uint64(v.id))
	if err != nil {
		return errEncoding("value id", err)
	}

	err = encoder.EncodeUint(uint64(v.typ)) //nolint:gosec
	if err != nil {
		return errEncoding("value type", err)
	}

	err = encoder.EncodeBool(v.aggregate)
	if err != nil {
		return errEncoding("aggregate flag", err)
	}

	switch payload := v.value.(type) {
	case int64:
		err = encoder.EncodeInt(payload)
	case uint64:
		err = encoder.EncodeUint(payload)
	case float64:
		err = encoder.EncodeFloat64(payload)
	case bool:
		err = encoder.EncodeBool(payload)
	case []byte:
		err = encoder.EncodeBytes(payload)
	default:
		err = encoder.EncodeNil()
	}

	if err != nil {
		return errEncoding("payload", err)
	}

	return nil
}

// DecodeMsgpack reads a value written by EncodeMsgpack. The decoded fields go
// through NewUnversionedValue.
func (v *UnversionedValue) DecodeMsgpack(decoder *msgpack.Decoder) error {
	err := decodeArrayLen(decoder, "unversioned value", unversionedArrayLen)
	if err != nil {
		return err
	}

	decoded, err := decodeFields(decoder)
	if err != nil {
		return err
	}

	*v = decoded

	return nil
}

// EncodeMsgpack writes the value as [id, type, aggregate, payload, timestamp].
func (v VersionedValue) EncodeMsgpack(encoder *msgpack.Encoder) error {
	err := encoder.EncodeArrayLen(versionedArrayLen)
	if err != nil {
		return errEncoding("versioned value", err)
	}

	err = v.value.encodeFields(encoder)
	if err != nil {
		return err
	}

	err = encoder.EncodeUint(uint64(v.timestamp))
	if err != nil {
		return errEncoding("timestamp", err)
	}

	return nil
}

// DecodeMsgpack reads a value written by EncodeMsgpack.
func (v *VersionedValue) DecodeMsgpack(decoder *msgpack.Decoder) error {
	err := decodeArrayLen(decoder, "versioned value", versionedArrayLen)
	if err != nil {
		return err
	}

	base, err := decodeFields(decoder)
	if err != nil {
		return err
	}

	timestamp, err := decoder.DecodeUint64()
	if err != nil {
		return errDecoding("versioned value", "timestamp", err)
	}

	*v = NewVersionedValueFrom(base, Timestamp(timestamp))

	return nil
}

func decodeArrayLen(decoder *msgpack.Decoder, objectType string, expected int) error {
	length, err := decoder.DecodeArrayLen()
	if err != nil {
		return errDecoding(objectType, "array length", err)
	}

	if length != expected {
		return errDecoding(objectType, "array length",
			fmt.Errorf("%w: expected %d, got %d", ErrArrayLength, expected, length))
	}

	return nil
}

//nolint:cyclop
func decodeFields(decoder *msgpack.Decoder) (UnversionedValue, error) {
	id, err := decoder.DecodeUint64()
	if err != nil {
		return UnversionedValue{}, errDecoding("value", "id", err)
	}

	if id > math.MaxUint16 {
		return UnversionedValue{}, errDecoding("value", "id", fmt.Errorf("%w: %d", ErrOutOfRange, id))
	}

	code, err := decoder.DecodeUint64()
	if err != nil {
		return UnversionedValue{}, errDecoding("value", "type", err)
	}

	if code > math.MaxUint8 {
		return UnversionedValue{}, errDecoding("value", "type", fmt.Errorf("%w: %d", ErrOutOfRange, code))
	}

	aggregate, err := decoder.DecodeBool()
	if err != nil {
		return UnversionedValue{}, errDecoding("value", "aggregate flag", err)
	}

	typ := schema.ValueType(code)

	var payload any

	switch typ {
	case schema.ValueTypeNull:
		err = decoder.DecodeNil()
	case schema.ValueTypeInt64:
		payload, err = decoder.DecodeInt64()
	case schema.ValueTypeUint64:
		payload, err = decoder.DecodeUint64()
	case schema.ValueTypeDouble:
		payload, err = decoder.DecodeFloat64()
	case schema.ValueTypeBoolean:
		payload, err = decoder.DecodeBool()
	case schema.ValueTypeString, schema.ValueTypeAny, schema.ValueTypeComposite:
		payload, err = decoder.DecodeBytes()
	default:
		payload, err = decoder.DecodeInterface()
	}

	if err != nil {
		return UnversionedValue{}, errDecoding("value", "payload of type "+typ.String(), err)
	}

	value, err := NewUnversionedValue(uint16(id), typ, aggregate, payload)
	if err != nil {
		return UnversionedValue{}, errDecoding("value", "", err)
	}

	return value, nil
}
