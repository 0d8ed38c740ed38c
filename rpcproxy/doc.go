// Package rpcproxy holds the proto2 messages of the YT RPC proxy API service
// used by this module.
//
// The messages are plain structs carrying protobuf struct tags and are
// serialized by github.com/gogo/protobuf/proto through its reflection path.
// Optional scalars are pointers: a nil pointer is an absent field. Getters
// return the proto2 default for absent fields.
//
// Identifiers follow the protoc-gen-gogo naming scheme so the messages can be
// swapped for generated code without touching callers.
package rpcproxy //nolint:revive,stylecheck
