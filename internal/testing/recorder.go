// Package testing contains helpers shared by the tests of this module.
package testing

import (
	"fmt"

	"github.com/tarantool/go-ytclient/ytree"
)

// EventKind identifies a ytree.Consumer callback.
type EventKind int

const (
	// EventString is OnStringScalar.
	EventString EventKind = iota + 1
	// EventInt64 is OnInt64Scalar.
	EventInt64
	// EventUint64 is OnUint64Scalar.
	EventUint64
	// EventDouble is OnDoubleScalar.
	EventDouble
	// EventBoolean is OnBooleanScalar.
	EventBoolean
	// EventEntity is OnEntity.
	EventEntity
	// EventBeginList is OnBeginList.
	EventBeginList
	// EventListItem is OnListItem.
	EventListItem
	// EventEndList is OnEndList.
	EventEndList
	// EventBeginMap is OnBeginMap.
	EventBeginMap
	// EventKeyedItem is OnKeyedItem.
	EventKeyedItem
	// EventEndMap is OnEndMap.
	EventEndMap
	// EventBeginAttributes is OnBeginAttributes.
	EventBeginAttributes
	// EventEndAttributes is OnEndAttributes.
	EventEndAttributes
	// EventRaw is OnRaw.
	EventRaw
)

var eventKindNames = map[EventKind]string{ //nolint:gochecknoglobals
	EventString:          "string",
	EventInt64:           "int64",
	EventUint64:          "uint64",
	EventDouble:          "double",
	EventBoolean:         "boolean",
	EventEntity:          "entity",
	EventBeginList:       "begin_list",
	EventListItem:        "list_item",
	EventEndList:         "end_list",
	EventBeginMap:        "begin_map",
	EventKeyedItem:       "keyed_item",
	EventEndMap:          "end_map",
	EventBeginAttributes: "begin_attributes",
	EventEndAttributes:   "end_attributes",
	EventRaw:             "raw",
}

// String returns the name of the callback.
func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Event is a single recorded callback. Value holds the argument: a string for
// string scalars, keys and raw fragments, the scalar itself otherwise, nil for
// structural events.
type Event struct {
	Kind  EventKind
	Value any
}

// String renders the event as "kind" or "kind(value)".
func (e Event) String() string {
	if e.Value == nil {
		return e.Kind.String()
	}

	return fmt.Sprintf("%s(%v)", e.Kind, e.Value)
}

// Recorder is a ytree.Consumer that stores every callback in order.
type Recorder struct {
	Events []Event
}

var _ ytree.Consumer = &Recorder{} //nolint:exhaustruct

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Events: nil}
}

// Strings returns the recorded events rendered with Event.String.
func (r *Recorder) Strings() []string {
	out := make([]string, 0, len(r.Events))
	for _, event := range r.Events {
		out = append(out, event.String())
	}

	return out
}

// Reset drops the recorded events.
func (r *Recorder) Reset() {
	r.Events = nil
}

func (r *Recorder) add(kind EventKind, value any) {
	r.Events = append(r.Events, Event{Kind: kind, Value: value})
}

// OnStringScalar implements ytree.Consumer.
func (r *Recorder) OnStringScalar(value []byte) {
	r.add(EventString, string(value))
}

// OnInt64Scalar implements ytree.Consumer.
func (r *Recorder) OnInt64Scalar(value int64) {
	r.add(EventInt64, value)
}

// OnUint64Scalar implements ytree.Consumer.
func (r *Recorder) OnUint64Scalar(value uint64) {
	r.add(EventUint64, value)
}

// OnDoubleScalar implements ytree.Consumer.
func (r *Recorder) OnDoubleScalar(value float64) {
	r.add(EventDouble, value)
}

// OnBooleanScalar implements ytree.Consumer.
func (r *Recorder) OnBooleanScalar(value bool) {
	r.add(EventBoolean, value)
}

// OnEntity implements ytree.Consumer.
func (r *Recorder) OnEntity() {
	r.add(EventEntity, nil)
}

// OnBeginList implements ytree.Consumer.
func (r *Recorder) OnBeginList() {
	r.add(EventBeginList, nil)
}

// OnListItem implements ytree.Consumer.
func (r *Recorder) OnListItem() {
	r.add(EventListItem, nil)
}

// OnEndList implements ytree.Consumer.
func (r *Recorder) OnEndList() {
	r.add(EventEndList, nil)
}

// OnBeginMap implements ytree.Consumer.
func (r *Recorder) OnBeginMap() {
	r.add(EventBeginMap, nil)
}

// OnKeyedItem implements ytree.Consumer.
func (r *Recorder) OnKeyedItem(key string) {
	r.add(EventKeyedItem, key)
}

// OnEndMap implements ytree.Consumer.
func (r *Recorder) OnEndMap() {
	r.add(EventEndMap, nil)
}

// OnBeginAttributes implements ytree.Consumer.
func (r *Recorder) OnBeginAttributes() {
	r.add(EventBeginAttributes, nil)
}

// OnEndAttributes implements ytree.Consumer.
func (r *Recorder) OnEndAttributes() {
	r.add(EventEndAttributes, nil)
}

// OnRaw implements ytree.Consumer.
func (r *Recorder) OnRaw(yson []byte) {
	r.add(EventRaw, string(yson))
}
