// Package ytclient is the typed value and request encoding layer of a client
// for the YT RPC proxy.
//
// The module is split into small packages:
//
//   - [github.com/tarantool/go-ytclient/wire] holds immutable typed cell
//     values, optionally stamped with an MVCC timestamp.
//   - [github.com/tarantool/go-ytclient/proxy] holds transaction options and
//     converts table schemas into rowset descriptors.
//   - [github.com/tarantool/go-ytclient/proxy/request] builds table requests
//     such as ReshardTable.
//   - [github.com/tarantool/go-ytclient/rpcproxy] holds the wire messages.
//   - [github.com/tarantool/go-ytclient/ytree] renders values as YSON text.
//
// Optional settings are kept as option.Generic values: a setting that was
// never set is not written to the wire, while one set to false or zero is.
package ytclient
