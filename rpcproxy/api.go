package rpcproxy

import (
	"github.com/gogo/protobuf/proto"
)

const (
	// Default_TReqStartTransaction_AutoAbort is the value of an absent auto_abort.
	Default_TReqStartTransaction_AutoAbort = true //nolint:revive,stylecheck
	// Default_TReqStartTransaction_Ping is the value of an absent ping.
	Default_TReqStartTransaction_Ping = true //nolint:revive,stylecheck
)

// TReqStartTransaction opens a master or tablet transaction.
type TReqStartTransaction struct {
	Type          *ETransactionType `protobuf:"varint,1,req,name=type,enum=NYT.NApi.NRpcProxy.NProto.ETransactionType"`
	Timeout       *int64            `protobuf:"varint,2,opt,name=timeout"`
	Id            *TGuid            `protobuf:"bytes,3,opt,name=id"`                                        //nolint:revive,stylecheck
	ParentId      *TGuid            `protobuf:"bytes,4,opt,name=parent_id,json=parentId"`                   //nolint:revive,stylecheck
	AutoAbort     *bool             `protobuf:"varint,5,opt,name=auto_abort,json=autoAbort"`
	Ping          *bool             `protobuf:"varint,6,opt,name=ping"`
	PingAncestors *bool             `protobuf:"varint,7,opt,name=ping_ancestors,json=pingAncestors"`
	Sticky        *bool             `protobuf:"varint,8,opt,name=sticky"`
}

func (m *TReqStartTransaction) Reset()         { *m = TReqStartTransaction{} }
func (m *TReqStartTransaction) String() string { return proto.CompactTextString(m) }
func (*TReqStartTransaction) ProtoMessage()    {}

func (m *TReqStartTransaction) GetType() ETransactionType {
	if m != nil && m.Type != nil {
		return *m.Type
	}

	return ETransactionType_TT_MASTER
}

// GetTimeout returns the timeout in microseconds.
func (m *TReqStartTransaction) GetTimeout() int64 {
	if m != nil && m.Timeout != nil {
		return *m.Timeout
	}

	return 0
}

func (m *TReqStartTransaction) GetId() *TGuid { //nolint:revive,stylecheck
	if m != nil {
		return m.Id
	}

	return nil
}

func (m *TReqStartTransaction) GetParentId() *TGuid { //nolint:revive,stylecheck
	if m != nil {
		return m.ParentId
	}

	return nil
}

func (m *TReqStartTransaction) GetAutoAbort() bool {
	if m != nil && m.AutoAbort != nil {
		return *m.AutoAbort
	}

	return Default_TReqStartTransaction_AutoAbort
}

func (m *TReqStartTransaction) GetPing() bool {
	if m != nil && m.Ping != nil {
		return *m.Ping
	}

	return Default_TReqStartTransaction_Ping
}

func (m *TReqStartTransaction) GetPingAncestors() bool {
	if m != nil && m.PingAncestors != nil {
		return *m.PingAncestors
	}

	return false
}

func (m *TReqStartTransaction) GetSticky() bool {
	if m != nil && m.Sticky != nil {
		return *m.Sticky
	}

	return false
}

// TReqReshardTable splits a dynamic table into tablets.
type TReqReshardTable struct {
	Path               *string              `protobuf:"bytes,1,req,name=path"`
	TabletCount        *int32               `protobuf:"varint,2,opt,name=tablet_count,json=tabletCount"`
	RowsetDescriptor   *TRowsetDescriptor   `protobuf:"bytes,3,opt,name=rowset_descriptor,json=rowsetDescriptor"`
	MutatingOptions    *TMutatingOptions    `protobuf:"bytes,100,opt,name=mutating_options,json=mutatingOptions"`
	TabletRangeOptions *TTabletRangeOptions `protobuf:"bytes,101,opt,name=tablet_range_options,json=tabletRangeOptions"`
}

func (m *TReqReshardTable) Reset()         { *m = TReqReshardTable{} }
func (m *TReqReshardTable) String() string { return proto.CompactTextString(m) }
func (*TReqReshardTable) ProtoMessage()    {}

func (m *TReqReshardTable) GetPath() string {
	if m != nil && m.Path != nil {
		return *m.Path
	}

	return ""
}

func (m *TReqReshardTable) GetTabletCount() int32 {
	if m != nil && m.TabletCount != nil {
		return *m.TabletCount
	}

	return 0
}

func (m *TReqReshardTable) GetRowsetDescriptor() *TRowsetDescriptor {
	if m != nil {
		return m.RowsetDescriptor
	}

	return nil
}

func (m *TReqReshardTable) GetMutatingOptions() *TMutatingOptions {
	if m != nil {
		return m.MutatingOptions
	}

	return nil
}

func (m *TReqReshardTable) GetTabletRangeOptions() *TTabletRangeOptions {
	if m != nil {
		return m.TabletRangeOptions
	}

	return nil
}

// TReqMountTable mounts the tablets of a dynamic table.
type TReqMountTable struct {
	Path               *string              `protobuf:"bytes,1,req,name=path"`
	CellId             *TGuid               `protobuf:"bytes,2,opt,name=cell_id,json=cellId"` //nolint:revive,stylecheck
	Freeze             *bool                `protobuf:"varint,3,opt,name=freeze"`
	MutatingOptions    *TMutatingOptions    `protobuf:"bytes,100,opt,name=mutating_options,json=mutatingOptions"`
	TabletRangeOptions *TTabletRangeOptions `protobuf:"bytes,101,opt,name=tablet_range_options,json=tabletRangeOptions"`
}

func (m *TReqMountTable) Reset()         { *m = TReqMountTable{} }
func (m *TReqMountTable) String() string { return proto.CompactTextString(m) }
func (*TReqMountTable) ProtoMessage()    {}

func (m *TReqMountTable) GetPath() string {
	if m != nil && m.Path != nil {
		return *m.Path
	}

	return ""
}

func (m *TReqMountTable) GetCellId() *TGuid { //nolint:revive,stylecheck
	if m != nil {
		return m.CellId
	}

	return nil
}

func (m *TReqMountTable) GetFreeze() bool {
	if m != nil && m.Freeze != nil {
		return *m.Freeze
	}

	return false
}

func (m *TReqMountTable) GetMutatingOptions() *TMutatingOptions {
	if m != nil {
		return m.MutatingOptions
	}

	return nil
}

func (m *TReqMountTable) GetTabletRangeOptions() *TTabletRangeOptions {
	if m != nil {
		return m.TabletRangeOptions
	}

	return nil
}

// TReqUnmountTable unmounts the tablets of a dynamic table.
type TReqUnmountTable struct {
	Path               *string              `protobuf:"bytes,1,req,name=path"`
	Force              *bool                `protobuf:"varint,2,opt,name=force"`
	MutatingOptions    *TMutatingOptions    `protobuf:"bytes,100,opt,name=mutating_options,json=mutatingOptions"`
	TabletRangeOptions *TTabletRangeOptions `protobuf:"bytes,101,opt,name=tablet_range_options,json=tabletRangeOptions"`
}

func (m *TReqUnmountTable) Reset()         { *m = TReqUnmountTable{} }
func (m *TReqUnmountTable) String() string { return proto.CompactTextString(m) }
func (*TReqUnmountTable) ProtoMessage()    {}

func (m *TReqUnmountTable) GetPath() string {
	if m != nil && m.Path != nil {
		return *m.Path
	}

	return ""
}

func (m *TReqUnmountTable) GetForce() bool {
	if m != nil && m.Force != nil {
		return *m.Force
	}

	return false
}

func (m *TReqUnmountTable) GetMutatingOptions() *TMutatingOptions {
	if m != nil {
		return m.MutatingOptions
	}

	return nil
}

func (m *TReqUnmountTable) GetTabletRangeOptions() *TTabletRangeOptions {
	if m != nil {
		return m.TabletRangeOptions
	}

	return nil
}

func init() { //nolint:gochecknoinits
	proto.RegisterType((*TGuid)(nil), "NYT.NProto.TGuid")
	proto.RegisterType((*TMutatingOptions)(nil), "NYT.NApi.NRpcProxy.NProto.TMutatingOptions")
	proto.RegisterType((*TTabletRangeOptions)(nil), "NYT.NApi.NRpcProxy.NProto.TTabletRangeOptions")
	proto.RegisterType((*TRowsetDescriptor)(nil), "NYT.NApi.NRpcProxy.NProto.TRowsetDescriptor")
	proto.RegisterType((*TRowsetDescriptor_TNameTableEntry)(nil),
		"NYT.NApi.NRpcProxy.NProto.TRowsetDescriptor.TNameTableEntry")
	proto.RegisterType((*TReqStartTransaction)(nil), "NYT.NApi.NRpcProxy.NProto.TReqStartTransaction")
	proto.RegisterType((*TReqReshardTable)(nil), "NYT.NApi.NRpcProxy.NProto.TReqReshardTable")
	proto.RegisterType((*TReqMountTable)(nil), "NYT.NApi.NRpcProxy.NProto.TReqMountTable")
	proto.RegisterType((*TReqUnmountTable)(nil), "NYT.NApi.NRpcProxy.NProto.TReqUnmountTable")
}
