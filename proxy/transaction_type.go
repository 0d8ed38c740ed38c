package proxy

import (
	"fmt"

	"github.com/tarantool/go-ytclient/rpcproxy"
)

// TransactionType is the kind of transaction to start. The zero value means
// the type was not given.
type TransactionType int

const (
	// TransactionTypeMaster is a transaction over master (Cypress) state.
	TransactionTypeMaster TransactionType = iota + 1
	// TransactionTypeTablet is a transaction over dynamic tables.
	TransactionTypeTablet
)

//nolint:gochecknoglobals
var (
	transactionTypeNames = map[TransactionType]string{
		TransactionTypeMaster: "master",
		TransactionTypeTablet: "tablet",
	}
	transactionTypeProto = map[TransactionType]rpcproxy.ETransactionType{
		TransactionTypeMaster: rpcproxy.ETransactionType_TT_MASTER,
		TransactionTypeTablet: rpcproxy.ETransactionType_TT_TABLET,
	}
)

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}

	return "unknown"
}

// Proto returns the wire enumeration value of the type.
func (t TransactionType) Proto() (rpcproxy.ETransactionType, bool) {
	value, ok := transactionTypeProto[t]
	return value, ok
}

// MarshalText implements encoding.TextMarshaler.
func (t TransactionType) MarshalText() ([]byte, error) {
	name, ok := transactionTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTransactionType, int(t))
	}

	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TransactionType) UnmarshalText(text []byte) error {
	for typ, name := range transactionTypeNames {
		if name == string(text) {
			*t = typ
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownTransactionType, string(text))
}
