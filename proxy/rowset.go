// Package proxy converts client-side options and schemas into the messages of
// the YT RPC proxy.
package proxy

import (
	"github.com/gogo/protobuf/proto"

	"github.com/tarantool/go-ytclient/rpcproxy"
	"github.com/tarantool/go-ytclient/schema"
)

// WireFormatVersion is the rowset wire format produced by this package.
const WireFormatVersion = 1

// MakeRowsetDescriptor projects the columns of s into an unversioned rowset
// descriptor, keeping their declared order.
func MakeRowsetDescriptor(s schema.TableSchema) (*rpcproxy.TRowsetDescriptor, error) {
	return makeRowsetDescriptor(s, rpcproxy.ERowsetKind_RK_UNVERSIONED)
}

// MakeVersionedRowsetDescriptor is MakeRowsetDescriptor for versioned rowsets.
func MakeVersionedRowsetDescriptor(s schema.TableSchema) (*rpcproxy.TRowsetDescriptor, error) {
	return makeRowsetDescriptor(s, rpcproxy.ERowsetKind_RK_VERSIONED)
}

func makeRowsetDescriptor(s schema.TableSchema, kind rpcproxy.ERowsetKind) (*rpcproxy.TRowsetDescriptor, error) {
	columns := s.Columns()
	entries := make([]*rpcproxy.TRowsetDescriptor_TNameTableEntry, 0, len(columns))
	seen := make(map[string]struct{}, len(columns))

	for i, column := range columns {
		switch _, duplicate := seen[column.Name()]; {
		case column.Name() == "":
			return nil, errUnsupportedSchema(column.Name(), i, "empty column name")
		case duplicate:
			return nil, errUnsupportedSchema(column.Name(), i, "duplicate column name")
		case !column.Type().IsWireType():
			return nil, errUnsupportedSchema(column.Name(), i,
				"value type "+column.Type().String()+" is not representable on the wire")
		}

		seen[column.Name()] = struct{}{}

		entries = append(entries, &rpcproxy.TRowsetDescriptor_TNameTableEntry{
			Name: proto.String(column.Name()),
			Type: proto.Int32(int32(column.Type())), //nolint:gosec
		})
	}

	return &rpcproxy.TRowsetDescriptor{
		WireFormatVersion: proto.Int32(WireFormatVersion),
		RowsetKind:        kind.Enum(),
		Columns:           entries,
	}, nil
}
