package rpcproxy

import (
	"github.com/gogo/protobuf/proto"
)

// ETransactionType is the kind of transaction started by TReqStartTransaction.
type ETransactionType int32

const (
	ETransactionType_TT_MASTER ETransactionType = 0 //nolint:revive,stylecheck
	ETransactionType_TT_TABLET ETransactionType = 1 //nolint:revive,stylecheck
)

var ETransactionType_name = map[int32]string{ //nolint:gochecknoglobals,revive,stylecheck
	0: "TT_MASTER",
	1: "TT_TABLET",
}

var ETransactionType_value = map[string]int32{ //nolint:gochecknoglobals,revive,stylecheck
	"TT_MASTER": 0,
	"TT_TABLET": 1,
}

// Enum returns a pointer to a copy of x, for use in optional fields.
func (x ETransactionType) Enum() *ETransactionType {
	p := new(ETransactionType)
	*p = x

	return p
}

func (x ETransactionType) String() string {
	return proto.EnumName(ETransactionType_name, int32(x))
}

// UnmarshalJSON accepts both the name and the number of the value.
func (x *ETransactionType) UnmarshalJSON(data []byte) error {
	value, err := proto.UnmarshalJSONEnum(ETransactionType_value, data, "ETransactionType")
	if err != nil {
		return err //nolint:wrapcheck
	}

	*x = ETransactionType(value)

	return nil
}

// ERowsetKind tells whether a rowset carries versioned rows.
type ERowsetKind int32

const (
	ERowsetKind_RK_UNVERSIONED ERowsetKind = 0 //nolint:revive,stylecheck
	ERowsetKind_RK_VERSIONED   ERowsetKind = 1 //nolint:revive,stylecheck
)

var ERowsetKind_name = map[int32]string{ //nolint:gochecknoglobals,revive,stylecheck
	0: "RK_UNVERSIONED",
	1: "RK_VERSIONED",
}

var ERowsetKind_value = map[string]int32{ //nolint:gochecknoglobals,revive,stylecheck
	"RK_UNVERSIONED": 0,
	"RK_VERSIONED":   1,
}

// Enum returns a pointer to a copy of x, for use in optional fields.
func (x ERowsetKind) Enum() *ERowsetKind {
	p := new(ERowsetKind)
	*p = x

	return p
}

func (x ERowsetKind) String() string {
	return proto.EnumName(ERowsetKind_name, int32(x))
}

// UnmarshalJSON accepts both the name and the number of the value.
func (x *ERowsetKind) UnmarshalJSON(data []byte) error {
	value, err := proto.UnmarshalJSONEnum(ERowsetKind_value, data, "ERowsetKind")
	if err != nil {
		return err //nolint:wrapcheck
	}

	*x = ERowsetKind(value)

	return nil
}

func init() { //nolint:gochecknoinits
	proto.RegisterEnum("NYT.NApi.NRpcProxy.NProto.ETransactionType", ETransactionType_name, ETransactionType_value)
	proto.RegisterEnum("NYT.NApi.NRpcProxy.NProto.ERowsetKind", ERowsetKind_name, ERowsetKind_value)
}
