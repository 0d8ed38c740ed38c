package request

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-ytclient/guid"
	"github.com/tarantool/go-ytclient/internal/optional"
	"github.com/tarantool/go-ytclient/proxy"
	"github.com/tarantool/go-ytclient/rpcproxy"
)

// MountTable mounts the tablets of a dynamic table.
type MountTable struct {
	tableReq

	cellID option.Generic[guid.GUID]
	freeze option.Generic[bool]
}

// NewMountTable creates a mount request for the table at path.
func NewMountTable(path string) (*MountTable, error) {
	base, err := newTableReq(path)
	if err != nil {
		return nil, err
	}

	return &MountTable{
		tableReq: base,
		cellID:   option.None[guid.GUID](),
		freeze:   option.None[bool](),
	}, nil
}

// CellID returns the tablet cell to mount to, if set.
func (r *MountTable) CellID() option.Generic[guid.GUID] {
	return r.cellID
}

// Freeze returns whether tablets are mounted frozen, if set.
func (r *MountTable) Freeze() option.Generic[bool] {
	return r.freeze
}

// SetCellID pins the tablets to the given tablet cell.
func (r *MountTable) SetCellID(id guid.GUID) *MountTable {
	r.cellID = option.Some(id)
	return r
}

// SetFreeze sets whether tablets are mounted frozen.
func (r *MountTable) SetFreeze(freeze bool) *MountTable {
	r.freeze = option.Some(freeze)
	return r
}

// SetMutatingOptions sets the mutating options. nil clears them.
func (r *MountTable) SetMutatingOptions(opts *MutatingOptions) *MountTable {
	r.setMutatingOptions(opts)
	return r
}

// SetTabletRangeOptions sets the tablet range. nil clears it.
func (r *MountTable) SetTabletRangeOptions(opts *TabletRangeOptions) *MountTable {
	r.setTabletRangeOptions(opts)
	return r
}

// WriteProto writes the path and the set fields into req and returns it. A nil
// req is replaced with a new message. A request without a path fails with
// proxy.NullRequiredFieldError and req is left unchanged.
func (r *MountTable) WriteProto(req *rpcproxy.TReqMountTable) (*rpcproxy.TReqMountTable, error) {
	err := r.validate()
	if err != nil {
		return nil, err
	}

	if req == nil {
		req = &rpcproxy.TReqMountTable{} //nolint:exhaustruct
	}

	r.writeProto(&req.Path, &req.MutatingOptions, &req.TabletRangeOptions)

	if id, ok := r.cellID.Get(); ok {
		req.CellId = proxy.ToProtoGUID(id)
	}

	optional.Write(&req.Freeze, r.freeze)

	return req, nil
}
