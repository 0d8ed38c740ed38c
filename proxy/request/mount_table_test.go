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
)

func TestMountTable(t *testing.T) {
	t.Parallel()

	cell := guid.FromParts(0xa, 0xb, 0xc, 0xd)

	req, err := request.NewMountTable(tablePath)
	require.NoError(t, err)

	req.SetCellID(cell).SetFreeze(false).
		SetTabletRangeOptions(request.NewTabletRangeOptions().SetFirstTabletIndex(1).SetLastTabletIndex(3))

	msg, err := req.WriteProto(nil)
	require.NoError(t, err)

	data, err := proto.Marshal(msg)
	require.NoError(t, err)

	var decoded rpcproxy.TReqMountTable

	require.NoError(t, proto.Unmarshal(data, &decoded))

	assert.Equal(t, tablePath, decoded.GetPath())
	assert.Equal(t, cell, proxy.FromProtoGUID(decoded.GetCellId()))
	require.NotNil(t, decoded.Freeze)
	assert.False(t, decoded.GetFreeze())
	assert.Equal(t, int32(1), decoded.GetTabletRangeOptions().GetFirstTabletIndex())
	assert.Equal(t, int32(3), decoded.GetTabletRangeOptions().GetLastTabletIndex())
	assert.Nil(t, decoded.MutatingOptions)
}

func TestMountTable_NothingSet(t *testing.T) {
	t.Parallel()

	req, err := request.NewMountTable(tablePath)
	require.NoError(t, err)

	assert.False(t, req.CellID().IsSome())
	assert.False(t, req.Freeze().IsSome())

	msg, err := req.WriteProto(nil)
	require.NoError(t, err)
	assert.Equal(t, tablePath, msg.GetPath())
	assert.Nil(t, msg.CellId)
	assert.Nil(t, msg.Freeze)
}

func TestUnmountTable(t *testing.T) {
	t.Parallel()

	_, err := request.NewUnmountTable("")
	require.ErrorAs(t, err, new(proxy.NullRequiredFieldError))

	req, err := request.NewUnmountTable(tablePath)
	require.NoError(t, err)

	msg, err := req.WriteProto(nil)
	require.NoError(t, err)
	assert.Nil(t, msg.Force)

	msg, err = req.SetForce(true).
		SetMutatingOptions(request.NewMutatingOptions().SetRetry(true)).
		WriteProto(nil)
	require.NoError(t, err)

	require.NotNil(t, msg.Force)
	assert.True(t, msg.GetForce())
	assert.True(t, msg.GetMutatingOptions().GetRetry())
	assert.Nil(t, msg.GetMutatingOptions().MutationId)
}

func TestMountTable_ZeroValueNeedsPath(t *testing.T) {
	t.Parallel()

	var req request.MountTable

	existing := &rpcproxy.TReqMountTable{Path: proto.String(tablePath)} //nolint:exhaustruct

	msg, err := req.SetFreeze(true).WriteProto(existing)
	assert.Nil(t, msg)

	var nullErr proxy.NullRequiredFieldError
	require.ErrorAs(t, err, &nullErr)
	assert.Equal(t, "path", nullErr.Field)

	assert.Equal(t, tablePath, existing.GetPath())
	assert.Nil(t, existing.Freeze)
}

func TestUnmountTable_ZeroValueNeedsPath(t *testing.T) {
	t.Parallel()

	var req request.UnmountTable

	msg, err := req.SetForce(true).WriteProto(nil)
	assert.Nil(t, msg)
	require.ErrorAs(t, err, new(proxy.NullRequiredFieldError))
}
