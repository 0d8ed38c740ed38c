package request_test

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarantool/go-ytclient/guid"
	"github.com/tarantool/go-ytclient/proxy"
	"github.com/tarantool/go-ytclient/proxy/request"
	"github.com/tarantool/go-ytclient/rpcproxy"
	"github.com/tarantool/go-ytclient/schema"
)

const tablePath = "//home/project/table"

func sampleSchema() schema.TableSchema {
	return schema.NewTableSchema([]schema.ColumnSchema{
		schema.NewColumnSchema("key", schema.ValueTypeInt64).WithSortOrder(schema.SortOrderAscending),
		schema.NewColumnSchema("value", schema.ValueTypeString),
	}, schema.WithUniqueKeys(true))
}

func roundTripReshard(t *testing.T, req *rpcproxy.TReqReshardTable) *rpcproxy.TReqReshardTable {
	t.Helper()

	data, err := proto.Marshal(req)
	require.NoError(t, err)

	var decoded rpcproxy.TReqReshardTable

	require.NoError(t, proto.Unmarshal(data, &decoded))

	return &decoded
}

func newReshard(t *testing.T) *request.ReshardTable {
	t.Helper()

	req, err := request.NewReshardTable(tablePath)
	require.NoError(t, err)

	return req
}

func TestNewReshardTable_EmptyPath(t *testing.T) {
	t.Parallel()

	_, err := request.NewReshardTable("")

	var nullErr proxy.NullRequiredFieldError
	require.ErrorAs(t, err, &nullErr)
	assert.Equal(t, "path", nullErr.Field)
}

func TestReshardTable_SchemaAndCount(t *testing.T) {
	t.Parallel()

	req := newReshard(t).SetSchema(sampleSchema()).SetTabletCount(4)

	msg, err := req.WriteProto(nil)
	require.NoError(t, err)

	decoded := roundTripReshard(t, msg)

	assert.Equal(t, tablePath, decoded.GetPath())
	require.NotNil(t, decoded.TabletCount)
	assert.Equal(t, int32(4), decoded.GetTabletCount())
	require.NotNil(t, decoded.RowsetDescriptor)

	expected, err := proxy.MakeRowsetDescriptor(sampleSchema())
	require.NoError(t, err)
	assert.True(t, proto.Equal(expected, decoded.GetRowsetDescriptor()))

	assert.Nil(t, decoded.MutatingOptions)
	assert.Nil(t, decoded.TabletRangeOptions)
}

func TestReshardTable_NothingSet(t *testing.T) {
	t.Parallel()

	req := newReshard(t)
	assert.False(t, req.Schema().IsSome())
	assert.False(t, req.TabletCount().IsSome())
	assert.False(t, req.MutatingOptions().IsSome())
	assert.False(t, req.TabletRangeOptions().IsSome())

	msg, err := req.WriteProto(&rpcproxy.TReqReshardTable{}) //nolint:exhaustruct
	require.NoError(t, err)

	decoded := roundTripReshard(t, msg)

	assert.Equal(t, tablePath, decoded.GetPath())
	assert.Nil(t, decoded.RowsetDescriptor)
	assert.Nil(t, decoded.TabletCount)
	assert.Nil(t, decoded.MutatingOptions)
	assert.Nil(t, decoded.TabletRangeOptions)
}

func TestReshardTable_ZeroCountIsSent(t *testing.T) {
	t.Parallel()

	msg, err := newReshard(t).SetTabletCount(0).WriteProto(nil)
	require.NoError(t, err)

	decoded := roundTripReshard(t, msg)
	require.NotNil(t, decoded.TabletCount)
	assert.Equal(t, int32(0), *decoded.TabletCount)
}

func TestReshardTable_UnsupportedSchema(t *testing.T) {
	t.Parallel()

	bad := schema.NewTableSchema([]schema.ColumnSchema{
		schema.NewColumnSchema("key", schema.ValueTypeTheBottom),
	})

	existing := &rpcproxy.TReqReshardTable{} //nolint:exhaustruct

	msg, err := newReshard(t).SetSchema(bad).SetTabletCount(2).WriteProto(existing)
	require.Nil(t, msg)

	var unsupported proxy.UnsupportedSchemaError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "key", unsupported.Column)

	assert.Nil(t, existing.Path, "request is not touched on error")
	assert.Nil(t, existing.TabletCount)
}

func TestReshardTable_ZeroValueNeedsPath(t *testing.T) {
	t.Parallel()

	var req request.ReshardTable

	existing := &rpcproxy.TReqReshardTable{} //nolint:exhaustruct

	msg, err := req.SetTabletCount(4).WriteProto(existing)
	require.Nil(t, msg)

	var nullErr proxy.NullRequiredFieldError
	require.ErrorAs(t, err, &nullErr)
	assert.Equal(t, "path", nullErr.Field)

	assert.Nil(t, existing.Path)
	assert.Nil(t, existing.TabletCount)
}

func TestReshardTable_WriteProtoIsRepeatable(t *testing.T) {
	t.Parallel()

	req := newReshard(t).SetSchema(sampleSchema()).SetTabletCount(8)

	first, err := req.WriteProto(nil)
	require.NoError(t, err)

	second, err := req.WriteProto(nil)
	require.NoError(t, err)

	assert.True(t, proto.Equal(first, second))

	*first.Path = "//changed"
	assert.Equal(t, tablePath, req.Path())
}

func TestReshardTable_SubOptions(t *testing.T) {
	t.Parallel()

	mutationID := guid.FromParts(1, 2, 3, 4)

	req := newReshard(t).
		SetMutatingOptions(request.NewMutatingOptions().SetMutationID(mutationID).SetRetry(false)).
		SetTabletRangeOptions(request.NewTabletRangeOptions().SetFirstTabletIndex(0))

	msg, err := req.WriteProto(nil)
	require.NoError(t, err)

	decoded := roundTripReshard(t, msg)

	require.NotNil(t, decoded.MutatingOptions)
	assert.Equal(t, mutationID, proxy.FromProtoGUID(decoded.GetMutatingOptions().GetMutationId()))
	require.NotNil(t, decoded.GetMutatingOptions().Retry)
	assert.False(t, decoded.GetMutatingOptions().GetRetry())

	require.NotNil(t, decoded.TabletRangeOptions)
	require.NotNil(t, decoded.GetTabletRangeOptions().FirstTabletIndex)
	assert.Equal(t, int32(0), decoded.GetTabletRangeOptions().GetFirstTabletIndex())
	assert.Nil(t, decoded.GetTabletRangeOptions().LastTabletIndex)
}

func TestReshardTable_EmptySubOptionsAreNotSent(t *testing.T) {
	t.Parallel()

	req := newReshard(t).
		SetMutatingOptions(request.NewMutatingOptions()).
		SetTabletRangeOptions(request.NewTabletRangeOptions())

	assert.True(t, req.MutatingOptions().IsSome())

	msg, err := req.WriteProto(nil)
	require.NoError(t, err)
	assert.Nil(t, msg.MutatingOptions)
	assert.Nil(t, msg.TabletRangeOptions)

	req.SetMutatingOptions(nil)
	assert.False(t, req.MutatingOptions().IsSome())
}

func TestReshardTable_OptionsAreCopied(t *testing.T) {
	t.Parallel()

	opts := request.NewMutatingOptions().SetRetry(true)
	req := newReshard(t).SetMutatingOptions(opts)

	opts.SetRetry(false)

	stored, ok := req.MutatingOptions().Get()
	require.True(t, ok)

	retry, ok := stored.Retry().Get()
	require.True(t, ok)
	assert.True(t, retry)
}
