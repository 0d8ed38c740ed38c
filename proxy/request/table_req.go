// Package request builds the table requests of the YT RPC proxy from sparse,
// optional settings. Unset fields never reach the wire.
package request

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-ytclient/proxy"
	"github.com/tarantool/go-ytclient/rpcproxy"
)

// tableReq holds the fields shared by the requests addressing a table.
type tableReq struct {
	path               string
	mutatingOptions    option.Generic[MutatingOptions]
	tabletRangeOptions option.Generic[TabletRangeOptions]
}

func newTableReq(path string) (tableReq, error) {
	if path == "" {
		return tableReq{}, proxy.NewNullRequiredFieldError("path")
	}

	return tableReq{
		path:               path,
		mutatingOptions:    option.None[MutatingOptions](),
		tabletRangeOptions: option.None[TabletRangeOptions](),
	}, nil
}

// Path returns the path of the table.
func (r *tableReq) Path() string {
	return r.path
}

// MutatingOptions returns the mutating options, if set.
func (r *tableReq) MutatingOptions() option.Generic[MutatingOptions] {
	return r.mutatingOptions
}

// TabletRangeOptions returns the tablet range, if set.
func (r *tableReq) TabletRangeOptions() option.Generic[TabletRangeOptions] {
	return r.tabletRangeOptions
}

func (r *tableReq) setMutatingOptions(opts *MutatingOptions) {
	if opts == nil {
		r.mutatingOptions = option.None[MutatingOptions]()
		return
	}

	r.mutatingOptions = option.Some(*opts)
}

func (r *tableReq) setTabletRangeOptions(opts *TabletRangeOptions) {
	if opts == nil {
		r.tabletRangeOptions = option.None[TabletRangeOptions]()
		return
	}

	r.tabletRangeOptions = option.Some(*opts)
}

// validate reports a missing path, which a zero value request has.
func (r *tableReq) validate() error {
	if r.path == "" {
		return proxy.NewNullRequiredFieldError("path")
	}

	return nil
}

// writeProto writes the path and the non-empty option blocks. Callers run
// validate first.
func (r *tableReq) writeProto(
	path **string,
	mutating **rpcproxy.TMutatingOptions,
	tabletRange **rpcproxy.TTabletRangeOptions,
) {
	p := r.path
	*path = &p

	if opts, ok := r.mutatingOptions.Get(); ok && !opts.IsEmpty() {
		*mutating = opts.WriteProto(*mutating)
	}

	if opts, ok := r.tabletRangeOptions.Get(); ok && !opts.IsEmpty() {
		*tabletRange = opts.WriteProto(*tabletRange)
	}
}
