package wire_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	yttesting "github.com/tarantool/go-ytclient/internal/testing"
	"github.com/tarantool/go-ytclient/schema"
	"github.com/tarantool/go-ytclient/wire"
	"github.com/tarantool/go-ytclient/ytree"
)

func mustVersioned(t *testing.T, ts wire.Timestamp) wire.VersionedValue {
	t.Helper()

	v, err := wire.NewVersionedValue(3, schema.ValueTypeInt64, false, 42, ts)
	require.NoError(t, err)

	return v
}

func TestVersionedValue_Accessors(t *testing.T) {
	t.Parallel()

	v := mustVersioned(t, 100)

	assert.Equal(t, uint16(3), v.ID())
	assert.Equal(t, schema.ValueTypeInt64, v.Type())
	assert.False(t, v.Aggregate())
	assert.Equal(t, int64(42), v.Value())
	assert.Equal(t, wire.Timestamp(100), v.Timestamp())
	assert.True(t, v.Unversioned().Equal(mustValue(t, 3, schema.ValueTypeInt64, false, 42)))
}

func TestNewVersionedValue_Invalid(t *testing.T) {
	t.Parallel()

	_, err := wire.NewVersionedValue(1, schema.ValueTypeBoolean, false, "yes", 100)

	var invalid *wire.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, schema.ValueTypeBoolean, invalid.Type)
}

func TestVersionedValue_Equal(t *testing.T) {
	t.Parallel()

	at100 := mustVersioned(t, 100)

	assert.True(t, at100.Equal(mustVersioned(t, 100)))
	assert.Equal(t, at100.Hash(), mustVersioned(t, 100).Hash())

	at101 := mustVersioned(t, 101)
	assert.False(t, at100.Equal(at101))
	assert.NotEqual(t, at100.Hash(), at101.Hash())

	other := wire.NewVersionedValueFrom(mustValue(t, 3, schema.ValueTypeInt64, false, 43), 100)
	assert.False(t, at100.Equal(other))

	assert.NotEqual(t, at100.Unversioned().Hash(), at100.Hash())
}

func TestVersionedValue_WriteTree(t *testing.T) {
	t.Parallel()

	v := mustVersioned(t, 100)

	base := yttesting.NewRecorder()
	v.Unversioned().WriteTree(base)

	recorder := yttesting.NewRecorder()
	v.WriteTree(recorder)

	expected := append([]yttesting.Event{
		{Kind: yttesting.EventBeginAttributes, Value: nil},
		{Kind: yttesting.EventKeyedItem, Value: "timestamp"},
		{Kind: yttesting.EventUint64, Value: uint64(100)},
		{Kind: yttesting.EventKeyedItem, Value: "aggregate"},
		{Kind: yttesting.EventBoolean, Value: false},
		{Kind: yttesting.EventEndAttributes, Value: nil},
	}, base.Events...)

	assert.Equal(t, expected, recorder.Events)
	assert.Equal(t, []string{"int64(42)"}, base.Strings())
}

func TestVersionedValue_Render(t *testing.T) {
	t.Parallel()

	out, err := ytree.Render(mustVersioned(t, 100))
	require.NoError(t, err)
	assert.Equal(t, `<"timestamp"=100u;"aggregate"=%false>42`, out)

	agg, err := wire.NewVersionedValue(0, schema.ValueTypeString, true, "hello", 7)
	require.NoError(t, err)

	out, err = ytree.Render(agg)
	require.NoError(t, err)
	assert.Equal(t, `<"timestamp"=7u;"aggregate"=%true>"hello"`, out)
}

func TestVersionedValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		"VersionedValue{UnversionedValue{id=3, type=int64, aggregate=false, value=42}, timestamp=100}",
		mustVersioned(t, 100).String())
}

func TestTimestamp(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 30, 15, 0, time.UTC)

	ts := wire.TimestampFromTime(now)
	assert.True(t, now.Equal(ts.Time()))
	assert.True(t, ts.IsValid())
	assert.True(t, now.Equal((ts + 12345).Time()), "counter bits do not change the second")

	assert.False(t, wire.NullTimestamp.IsValid())
	assert.True(t, wire.MinTimestamp.IsValid())
	assert.True(t, wire.MaxTimestamp.IsValid())
	assert.False(t, (wire.MaxTimestamp + 1).IsValid())
	assert.Equal(t, "100", wire.Timestamp(100).String())
}
