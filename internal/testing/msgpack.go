package testing

import (
	"bytes"
	"encoding/hex"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

// TB is the subset of testing.TB the helpers need.
type TB interface {
	require.TestingT
	Helper()
}

// MarshalMsgpack encodes value and fails the test on error.
func MarshalMsgpack(t TB, value any) []byte {
	t.Helper()

	data, err := msgpack.Marshal(value)
	require.NoError(t, err)

	return data
}

// UnmarshalMsgpack decodes data into a new T and fails the test on error.
func UnmarshalMsgpack[T any](t TB, data []byte) T {
	t.Helper()

	var out T

	require.NoError(t, msgpack.Unmarshal(data, &out))

	return out
}

// RoundTripMsgpack encodes value and decodes the result into a new T.
func RoundTripMsgpack[T any](t TB, value T) T {
	t.Helper()

	return UnmarshalMsgpack[T](t, MarshalMsgpack(t, value))
}

// DecodeMsgpackArray decodes data as a generic msgpack array, so tests can
// check the layout of custom encoders.
func DecodeMsgpackArray(t TB, data []byte) []any {
	t.Helper()

	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.UseLooseInterfaceDecoding(true)

	out, err := dec.DecodeSlice()
	require.NoError(t, err, "msgpack dump: %s", hex.EncodeToString(data))

	return out
}
