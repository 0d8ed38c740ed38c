package request

import (
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-ytclient/guid"
	"github.com/tarantool/go-ytclient/internal/optional"
	"github.com/tarantool/go-ytclient/proxy"
	"github.com/tarantool/go-ytclient/rpcproxy"
)

// MutatingOptions makes a mutating request safe to retry: the server applies
// requests with the same mutation id once.
type MutatingOptions struct {
	mutationID option.Generic[guid.GUID]
	retry      option.Generic[bool]
}

// NewMutatingOptions returns options with no field set.
func NewMutatingOptions() *MutatingOptions {
	return &MutatingOptions{
		mutationID: option.None[guid.GUID](),
		retry:      option.None[bool](),
	}
}

// MutationID returns the mutation id, if set.
func (o *MutatingOptions) MutationID() option.Generic[guid.GUID] {
	return o.mutationID
}

// Retry returns whether the request is a retry, if set.
func (o *MutatingOptions) Retry() option.Generic[bool] {
	return o.retry
}

// SetMutationID sets the mutation id.
func (o *MutatingOptions) SetMutationID(id guid.GUID) *MutatingOptions {
	o.mutationID = option.Some(id)
	return o
}

// SetRetry marks the request as a retry of an earlier one.
func (o *MutatingOptions) SetRetry(retry bool) *MutatingOptions {
	o.retry = option.Some(retry)
	return o
}

// IsEmpty reports whether no field is set.
func (o *MutatingOptions) IsEmpty() bool {
	return !o.mutationID.IsSome() && !o.retry.IsSome()
}

// WriteProto writes the set fields into msg and returns it. A nil msg is
// replaced with a new message.
func (o *MutatingOptions) WriteProto(msg *rpcproxy.TMutatingOptions) *rpcproxy.TMutatingOptions {
	if msg == nil {
		msg = &rpcproxy.TMutatingOptions{} //nolint:exhaustruct
	}

	if id, ok := o.mutationID.Get(); ok {
		msg.MutationId = proxy.ToProtoGUID(id)
	}

	optional.Write(&msg.Retry, o.retry)

	return msg
}

// TabletRangeOptions limits a request to the tablets with indexes in
// [first, last].
type TabletRangeOptions struct {
	firstTabletIndex option.Generic[int32]
	lastTabletIndex  option.Generic[int32]
}

// NewTabletRangeOptions returns options with no field set.
func NewTabletRangeOptions() *TabletRangeOptions {
	return &TabletRangeOptions{
		firstTabletIndex: option.None[int32](),
		lastTabletIndex:  option.None[int32](),
	}
}

// FirstTabletIndex returns the first tablet index, if set.
func (o *TabletRangeOptions) FirstTabletIndex() option.Generic[int32] {
	return o.firstTabletIndex
}

// LastTabletIndex returns the last tablet index, if set.
func (o *TabletRangeOptions) LastTabletIndex() option.Generic[int32] {
	return o.lastTabletIndex
}

// SetFirstTabletIndex sets the first tablet of the range.
func (o *TabletRangeOptions) SetFirstTabletIndex(index int32) *TabletRangeOptions {
	o.firstTabletIndex = option.Some(index)
	return o
}

// SetLastTabletIndex sets the last tablet of the range.
func (o *TabletRangeOptions) SetLastTabletIndex(index int32) *TabletRangeOptions {
	o.lastTabletIndex = option.Some(index)
	return o
}

// IsEmpty reports whether no field is set.
func (o *TabletRangeOptions) IsEmpty() bool {
	return !o.firstTabletIndex.IsSome() && !o.lastTabletIndex.IsSome()
}

// WriteProto writes the set fields into msg and returns it. A nil msg is
// replaced with a new message.
func (o *TabletRangeOptions) WriteProto(msg *rpcproxy.TTabletRangeOptions) *rpcproxy.TTabletRangeOptions {
	if msg == nil {
		msg = &rpcproxy.TTabletRangeOptions{} //nolint:exhaustruct
	}

	optional.Write(&msg.FirstTabletIndex, o.firstTabletIndex)
	optional.Write(&msg.LastTabletIndex, o.lastTabletIndex)

	return msg
}
