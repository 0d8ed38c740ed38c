package rpcproxy

import (
	"github.com/gogo/protobuf/proto"
)

// TGuid is the wire form of a YT GUID split into two 64-bit halves.
type TGuid struct {
	First  *uint64 `protobuf:"fixed64,1,req,name=first"`
	Second *uint64 `protobuf:"fixed64,2,req,name=second"`
}

func (m *TGuid) Reset()         { *m = TGuid{} }
func (m *TGuid) String() string { return proto.CompactTextString(m) }
func (*TGuid) ProtoMessage()    {}

func (m *TGuid) GetFirst() uint64 {
	if m != nil && m.First != nil {
		return *m.First
	}

	return 0
}

func (m *TGuid) GetSecond() uint64 {
	if m != nil && m.Second != nil {
		return *m.Second
	}

	return 0
}

// TMutatingOptions makes a mutating request idempotent on retries.
type TMutatingOptions struct {
	MutationId *TGuid `protobuf:"bytes,1,opt,name=mutation_id,json=mutationId"` //nolint:revive,stylecheck
	Retry      *bool  `protobuf:"varint,2,opt,name=retry"`
}

func (m *TMutatingOptions) Reset()         { *m = TMutatingOptions{} }
func (m *TMutatingOptions) String() string { return proto.CompactTextString(m) }
func (*TMutatingOptions) ProtoMessage()    {}

func (m *TMutatingOptions) GetMutationId() *TGuid { //nolint:revive,stylecheck
	if m != nil {
		return m.MutationId
	}

	return nil
}

func (m *TMutatingOptions) GetRetry() bool {
	if m != nil && m.Retry != nil {
		return *m.Retry
	}

	return false
}

// TTabletRangeOptions limits a tablet request to a range of tablets.
type TTabletRangeOptions struct {
	FirstTabletIndex *int32 `protobuf:"varint,1,opt,name=first_tablet_index,json=firstTabletIndex"`
	LastTabletIndex  *int32 `protobuf:"varint,2,opt,name=last_tablet_index,json=lastTabletIndex"`
}

func (m *TTabletRangeOptions) Reset()         { *m = TTabletRangeOptions{} }
func (m *TTabletRangeOptions) String() string { return proto.CompactTextString(m) }
func (*TTabletRangeOptions) ProtoMessage()    {}

func (m *TTabletRangeOptions) GetFirstTabletIndex() int32 {
	if m != nil && m.FirstTabletIndex != nil {
		return *m.FirstTabletIndex
	}

	return 0
}

func (m *TTabletRangeOptions) GetLastTabletIndex() int32 {
	if m != nil && m.LastTabletIndex != nil {
		return *m.LastTabletIndex
	}

	return 0
}

// TRowsetDescriptor describes the columns of an attached rowset.
type TRowsetDescriptor struct {
	WireFormatVersion *int32                              `protobuf:"varint,1,opt,name=wire_format_version,json=wireFormatVersion"` //nolint:lll
	RowsetKind        *ERowsetKind                        `protobuf:"varint,2,opt,name=rowset_kind,json=rowsetKind,enum=NYT.NApi.NRpcProxy.NProto.ERowsetKind"` //nolint:lll
	Columns           []*TRowsetDescriptor_TNameTableEntry `protobuf:"bytes,3,rep,name=columns"`
}

func (m *TRowsetDescriptor) Reset()         { *m = TRowsetDescriptor{} }
func (m *TRowsetDescriptor) String() string { return proto.CompactTextString(m) }
func (*TRowsetDescriptor) ProtoMessage()    {}

func (m *TRowsetDescriptor) GetWireFormatVersion() int32 {
	if m != nil && m.WireFormatVersion != nil {
		return *m.WireFormatVersion
	}

	return 0
}

func (m *TRowsetDescriptor) GetRowsetKind() ERowsetKind {
	if m != nil && m.RowsetKind != nil {
		return *m.RowsetKind
	}

	return ERowsetKind_RK_UNVERSIONED
}

func (m *TRowsetDescriptor) GetColumns() []*TRowsetDescriptor_TNameTableEntry {
	if m != nil {
		return m.Columns
	}

	return nil
}

// TRowsetDescriptor_TNameTableEntry maps a column position to its name and value type.
type TRowsetDescriptor_TNameTableEntry struct { //nolint:revive,stylecheck
	Name *string `protobuf:"bytes,1,opt,name=name"`
	Type *int32  `protobuf:"varint,2,opt,name=type"`
}

func (m *TRowsetDescriptor_TNameTableEntry) Reset() {
	*m = TRowsetDescriptor_TNameTableEntry{}
}

func (m *TRowsetDescriptor_TNameTableEntry) String() string { return proto.CompactTextString(m) }
func (*TRowsetDescriptor_TNameTableEntry) ProtoMessage()    {}

func (m *TRowsetDescriptor_TNameTableEntry) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}

	return ""
}

func (m *TRowsetDescriptor_TNameTableEntry) GetType() int32 {
	if m != nil && m.Type != nil {
		return *m.Type
	}

	return 0
}
