package request

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-ytclient/internal/optional"
	"github.com/tarantool/go-ytclient/rpcproxy"
)

// UnmountTable unmounts the tablets of a dynamic table.
type UnmountTable struct {
	tableReq

	force option.Generic[bool]
}

// NewUnmountTable creates an unmount request for the table at path.
func NewUnmountTable(path string) (*UnmountTable, error) {
	base, err := newTableReq(path)
	if err != nil {
		return nil, err
	}

	return &UnmountTable{
		tableReq: base,
		force:    option.None[bool](),
	}, nil
}

// Force returns whether unmounting skips flushing, if set.
func (r *UnmountTable) Force() option.Generic[bool] {
	return r.force
}

// SetForce unmounts without waiting for the tablets to flush.
func (r *UnmountTable) SetForce(force bool) *UnmountTable {
	r.force = option.Some(force)
	return r
}

// SetMutatingOptions sets the mutating options. nil clears them.
func (r *UnmountTable) SetMutatingOptions(opts *MutatingOptions) *UnmountTable {
	r.setMutatingOptions(opts)
	return r
}

// SetTabletRangeOptions sets the tablet range. nil clears it.
func (r *UnmountTable) SetTabletRangeOptions(opts *TabletRangeOptions) *UnmountTable {
	r.setTabletRangeOptions(opts)
	return r
}

// WriteProto writes the path and the set fields into req and returns it. A nil
// req is replaced with a new message. A request without a path fails with
// proxy.NullRequiredFieldError and req is left unchanged.
func (r *UnmountTable) WriteProto(req *rpcproxy.TReqUnmountTable) (*rpcproxy.TReqUnmountTable, error) {
	err := r.validate()
	if err != nil {
		return nil, err
	}

	if req == nil {
		req = &rpcproxy.TReqUnmountTable{} //nolint:exhaustruct
	}

	r.writeProto(&req.Path, &req.MutatingOptions, &req.TabletRangeOptions)
	optional.Write(&req.Force, r.force)

	return req, nil
}
