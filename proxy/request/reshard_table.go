package request

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-ytclient/internal/optional"
	"github.com/tarantool/go-ytclient/proxy"
	"github.com/tarantool/go-ytclient/rpcproxy"
	"github.com/tarantool/go-ytclient/schema"
)

// ReshardTable splits a dynamic table into tablets, optionally changing its
// schema on the way.
type ReshardTable struct {
	tableReq

	schema      option.Generic[schema.TableSchema]
	tabletCount option.Generic[int32]
}

// NewReshardTable creates a reshard request for the table at path.
func NewReshardTable(path string) (*ReshardTable, error) {
	base, err := newTableReq(path)
	if err != nil {
		return nil, err
	}

	return &ReshardTable{
		tableReq:    base,
		schema:      option.None[schema.TableSchema](),
		tabletCount: option.None[int32](),
	}, nil
}

// Schema returns the schema attached to the request, if set.
func (r *ReshardTable) Schema() option.Generic[schema.TableSchema] {
	return r.schema
}

// TabletCount returns the requested number of tablets, if set.
func (r *ReshardTable) TabletCount() option.Generic[int32] {
	return r.tabletCount
}

// SetSchema attaches a schema; it is sent as a rowset descriptor.
func (r *ReshardTable) SetSchema(s schema.TableSchema) *ReshardTable {
	r.schema = option.Some(s)
	return r
}

// SetTabletCount sets the number of tablets to reshard into.
func (r *ReshardTable) SetTabletCount(count int32) *ReshardTable {
	r.tabletCount = option.Some(count)
	return r
}

// SetMutatingOptions sets the mutating options. nil clears them.
func (r *ReshardTable) SetMutatingOptions(opts *MutatingOptions) *ReshardTable {
	r.setMutatingOptions(opts)
	return r
}

// SetTabletRangeOptions sets the tablet range. nil clears it.
func (r *ReshardTable) SetTabletRangeOptions(opts *TabletRangeOptions) *ReshardTable {
	r.setTabletRangeOptions(opts)
	return r
}

// WriteProto writes the path and the set fields into req and returns it. A nil
// req is replaced with a new message. A request without a path fails with
// proxy.NullRequiredFieldError. If the attached schema cannot be represented
// on the wire, the error from proxy.MakeRowsetDescriptor is returned. On
// error req is left unchanged.
func (r *ReshardTable) WriteProto(req *rpcproxy.TReqReshardTable) (*rpcproxy.TReqReshardTable, error) {
	err := r.validate()
	if err != nil {
		return nil, err
	}

	var descriptor *rpcproxy.TRowsetDescriptor

	if s, ok := r.schema.Get(); ok {
		descriptor, err = proxy.MakeRowsetDescriptor(s)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	if req == nil {
		req = &rpcproxy.TReqReshardTable{} //nolint:exhaustruct
	}

	r.writeProto(&req.Path, &req.MutatingOptions, &req.TabletRangeOptions)

	if descriptor != nil {
		req.RowsetDescriptor = descriptor
	}

	optional.Write(&req.TabletCount, r.tabletCount)

	return req, nil
}
