package proxy

import (
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/tarantool/go-option"

	"github.com/tarantool/go-ytclient/guid"
	"github.com/tarantool/go-ytclient/internal/optional"
	"github.com/tarantool/go-ytclient/rpcproxy"
)

// TransactionOptions holds the options of a StartTransaction request.
//
// Only the type is mandatory. Every other field stays unset until its setter
// is called, and unset fields are never written to the request, so the
// server side defaults apply to them. Setters return the receiver. The
// options are not safe for concurrent modification.
type TransactionOptions struct {
	typ TransactionType

	timeout       option.Generic[time.Duration]
	id            option.Generic[guid.GUID]
	parentID      option.Generic[guid.GUID]
	autoAbort     option.Generic[bool]
	ping          option.Generic[bool]
	pingAncestors option.Generic[bool]
	sticky        option.Generic[bool]
}

// NewTransactionOptions creates options for a transaction of the given type.
func NewTransactionOptions(typ TransactionType) (*TransactionOptions, error) {
	if typ == 0 {
		return nil, NewNullRequiredFieldError("type")
	}

	if _, ok := typ.Proto(); !ok {
		return nil, ErrUnknownTransactionType
	}

	return &TransactionOptions{
		typ:           typ,
		timeout:       option.None[time.Duration](),
		id:            option.None[guid.GUID](),
		parentID:      option.None[guid.GUID](),
		autoAbort:     option.None[bool](),
		ping:          option.None[bool](),
		pingAncestors: option.None[bool](),
		sticky:        option.None[bool](),
	}, nil
}

// Type returns the transaction type.
func (o *TransactionOptions) Type() TransactionType {
	return o.typ
}

// Timeout returns the transaction timeout, if set.
func (o *TransactionOptions) Timeout() option.Generic[time.Duration] {
	return o.timeout
}

// ID returns the id to start the transaction with, if set.
func (o *TransactionOptions) ID() option.Generic[guid.GUID] {
	return o.id
}

// ParentID returns the id of the parent transaction, if set.
func (o *TransactionOptions) ParentID() option.Generic[guid.GUID] {
	return o.parentID
}

// AutoAbort returns whether the transaction is aborted on client disconnect, if set.
func (o *TransactionOptions) AutoAbort() option.Generic[bool] {
	return o.autoAbort
}

// Ping returns whether the transaction is pinged automatically, if set.
func (o *TransactionOptions) Ping() option.Generic[bool] {
	return o.ping
}

// PingAncestors returns whether pings are propagated to ancestors, if set.
func (o *TransactionOptions) PingAncestors() option.Generic[bool] {
	return o.pingAncestors
}

// Sticky returns whether the transaction is bound to a single proxy, if set.
func (o *TransactionOptions) Sticky() option.Generic[bool] {
	return o.sticky
}

// SetTimeout sets the transaction timeout. The wire carries microseconds, so
// a positive timeout shorter than a microsecond is sent as one microsecond.
func (o *TransactionOptions) SetTimeout(timeout time.Duration) *TransactionOptions {
	o.timeout = option.Some(timeout)
	return o
}

// SetID sets the id to start the transaction with.
func (o *TransactionOptions) SetID(id guid.GUID) *TransactionOptions {
	o.id = option.Some(id)
	return o
}

// SetParentID sets the parent transaction.
func (o *TransactionOptions) SetParentID(id guid.GUID) *TransactionOptions {
	o.parentID = option.Some(id)
	return o
}

// SetAutoAbort sets whether the transaction is aborted on client disconnect.
func (o *TransactionOptions) SetAutoAbort(autoAbort bool) *TransactionOptions {
	o.autoAbort = option.Some(autoAbort)
	return o
}

// SetPing sets whether the transaction is pinged automatically.
func (o *TransactionOptions) SetPing(ping bool) *TransactionOptions {
	o.ping = option.Some(ping)
	return o
}

// SetPingAncestors sets whether pings are propagated to ancestor transactions.
func (o *TransactionOptions) SetPingAncestors(pingAncestors bool) *TransactionOptions {
	o.pingAncestors = option.Some(pingAncestors)
	return o
}

// SetSticky sets whether the transaction is bound to a single proxy.
func (o *TransactionOptions) SetSticky(sticky bool) *TransactionOptions {
	o.sticky = option.Some(sticky)
	return o
}

// WriteProto writes the type and every set option into req and returns it.
// A nil req is replaced with a new message. Fields of req that correspond to
// unset options are left untouched. Options without a valid type, such as a
// zero value, fail with NullRequiredFieldError and req is not modified.
func (o *TransactionOptions) WriteProto(req *rpcproxy.TReqStartTransaction) (*rpcproxy.TReqStartTransaction, error) {
	typ, ok := o.typ.Proto()
	if !ok {
		return nil, NewNullRequiredFieldError("type")
	}

	if req == nil {
		req = &rpcproxy.TReqStartTransaction{} //nolint:exhaustruct
	}

	req.Type = typ.Enum()

	if timeout, ok := o.timeout.Get(); ok {
		req.Timeout = proto.Int64(DurationToMicros(timeout))
	}

	if id, ok := o.id.Get(); ok {
		req.Id = ToProtoGUID(id)
	}

	if parentID, ok := o.parentID.Get(); ok {
		req.ParentId = ToProtoGUID(parentID)
	}

	optional.Write(&req.AutoAbort, o.autoAbort)
	optional.Write(&req.Ping, o.ping)
	optional.Write(&req.PingAncestors, o.pingAncestors)
	optional.Write(&req.Sticky, o.sticky)

	return req, nil
}
