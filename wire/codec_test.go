package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	yttesting "github.com/tarantool/go-ytclient/internal/testing"
	"github.com/tarantool/go-ytclient/schema"
	"github.com/tarantool/go-ytclient/wire"
)

func TestUnversionedValue_EncodeMsgpack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    wire.UnversionedValue
		expected []byte
	}{
		{
			name:     "int64",
			value:    mustValue(t, 3, schema.ValueTypeInt64, false, 42),
			expected: []byte{0x94, 0x03, 0x03, 0xc2, 0x2a},
		},
		{
			name:     "null",
			value:    mustValue(t, 1, schema.ValueTypeNull, true, nil),
			expected: []byte{0x94, 0x01, 0x02, 0xc3, 0xc0},
		},
		{
			name:     "boolean",
			value:    mustValue(t, 2, schema.ValueTypeBoolean, false, true),
			expected: []byte{0x94, 0x02, 0x06, 0xc2, 0xc3},
		},
		{
			name:     "string",
			value:    mustValue(t, 0, schema.ValueTypeString, false, "ab"),
			expected: []byte{0x94, 0x00, 0x10, 0xc2, 0xc4, 0x02, 0x61, 0x62},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			require.NoError(t, tt.value.EncodeMsgpack(msgpack.NewEncoder(&buf)))
			assert.Equal(t, tt.expected, buf.Bytes())
		})
	}
}

func TestVersionedValue_EncodeMsgpack(t *testing.T) {
	t.Parallel()

	data := yttesting.MarshalMsgpack(t, mustVersioned(t, 100))
	assert.Equal(t, []byte{0x95, 0x03, 0x03, 0xc2, 0x2a, 0x64}, data)
	assert.Len(t, yttesting.DecodeMsgpackArray(t, data), 5)
}

func TestValue_MsgpackRoundTrip(t *testing.T) {
	t.Parallel()

	values := []wire.UnversionedValue{
		mustValue(t, 0, schema.ValueTypeNull, false, nil),
		mustValue(t, 1, schema.ValueTypeInt64, true, -1),
		mustValue(t, 2, schema.ValueTypeUint64, false, uint64(1<<63)),
		mustValue(t, 3, schema.ValueTypeDouble, false, -0.25),
		mustValue(t, 4, schema.ValueTypeBoolean, false, false),
		mustValue(t, 5, schema.ValueTypeString, false, ""),
		mustValue(t, 6, schema.ValueTypeAny, false, "{a=1}"),
		mustValue(t, 65535, schema.ValueTypeComposite, true, "[1;2]"),
	}

	for _, value := range values {
		t.Run(value.Type().String(), func(t *testing.T) {
			t.Parallel()

			decoded := yttesting.RoundTripMsgpack(t, value)
			assert.True(t, value.Equal(decoded), "%s != %s", value, decoded)

			versioned := wire.NewVersionedValueFrom(value, wire.MaxTimestamp)
			decodedVersioned := yttesting.RoundTripMsgpack(t, versioned)
			assert.True(t, versioned.Equal(decodedVersioned), "%s != %s", versioned, decodedVersioned)
		})
	}
}

func TestValue_DecodeMsgpack_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"not an array", []byte{0x2a}},
		{"short array", []byte{0x93, 0x03, 0x03, 0xc2}},
		{"payload mismatch", []byte{0x94, 0x03, 0x06, 0xc2, 0xa1, 0x61}},
		{"null with payload", []byte{0x94, 0x03, 0x02, 0xc2, 0x01}},
		{"id out of range", []byte{0x94, 0xce, 0x00, 0x01, 0x11, 0x70, 0x03, 0xc2, 0x2a}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var value wire.UnversionedValue

			err := msgpack.Unmarshal(tt.data, &value)
			require.Error(t, err)

			var decodingErr wire.DecodingError
			require.ErrorAs(t, err, &decodingErr)
		})
	}
}

func TestValue_DecodeMsgpack_SentinelType(t *testing.T) {
	t.Parallel()

	var value wire.UnversionedValue

	err := msgpack.Unmarshal([]byte{0x94, 0x03, 0xcc, 0xef, 0xc2, 0xc0}, &value)

	var invalid *wire.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, schema.ValueTypeMax, invalid.Type)
}
