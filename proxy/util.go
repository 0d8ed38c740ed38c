package proxy

import (
	"time"

	"github.com/gogo/protobuf/proto"

	"github.com/tarantool/go-ytclient/guid"
	"github.com/tarantool/go-ytclient/rpcproxy"
)

// ToProtoGUID converts a GUID to its wire form.
func ToProtoGUID(id guid.GUID) *rpcproxy.TGuid {
	first, second := id.Halves()

	return &rpcproxy.TGuid{
		First:  proto.Uint64(first),
		Second: proto.Uint64(second),
	}
}

// FromProtoGUID converts the wire form back to a GUID. A nil message yields
// the empty GUID.
func FromProtoGUID(id *rpcproxy.TGuid) guid.GUID {
	return guid.FromHalves(id.GetFirst(), id.GetSecond())
}

// DurationToMicros converts a duration to the microseconds used on the wire.
// Fractions are truncated, except that a positive duration never becomes zero.
func DurationToMicros(d time.Duration) int64 {
	micros := d.Microseconds()
	if micros == 0 && d > 0 {
		return 1
	}

	return micros
}

// MicrosToDuration converts wire microseconds to a duration.
func MicrosToDuration(micros int64) time.Duration {
	return time.Duration(micros) * time.Microsecond
}
