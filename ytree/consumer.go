// Package ytree defines the push-style consumer of YT tree events and a text
// renderer of those events.
package ytree

// Consumer receives a tree as a stream of events.
//
// Maps and attribute blocks are written as Begin, then OnKeyedItem before every
// value, then End. Lists use OnListItem before every item. Attributes precede
// the node they belong to.
type Consumer interface {
	OnStringScalar(value []byte)
	OnInt64Scalar(value int64)
	OnUint64Scalar(value uint64)
	OnDoubleScalar(value float64)
	OnBooleanScalar(value bool)
	OnEntity()

	OnBeginList()
	OnListItem()
	OnEndList()

	OnBeginMap()
	OnKeyedItem(key string)
	OnEndMap()

	OnBeginAttributes()
	OnEndAttributes()

	// OnRaw passes a complete YSON fragment through unchanged.
	OnRaw(yson []byte)
}

// TreeWriter is implemented by values that can emit themselves into a Consumer.
type TreeWriter interface {
	WriteTree(consumer Consumer)
}
