package pduschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// IpMessageMetadata is the transport subtree when TransportType == TransportMetadataIp.
// IpAddr/Adapter are themselves tagged unions discriminated by IpAddrType/AdapterType.
type IpMessageMetadata struct {
	_tab flatbuffers.Table
}

func GetRootAsIpMessageMetadata(buf []byte, offset flatbuffers.UOffsetT) *IpMessageMetadata {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &IpMessageMetadata{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *IpMessageMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *IpMessageMetadata) Table() flatbuffers.Table { return rcv._tab }

func (rcv *IpMessageMetadata) EthDstMac() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) EthSrcMac() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) EthEthertype() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) EthTciPcp() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) EthTciDei() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) EthTciVid() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) IpAddrType() IpAddr {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return IpAddr(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return IpAddrNONE
}

// IpAddr returns the raw table backing the tagged v4/v6 address, or nil if absent.
func (rcv *IpMessageMetadata) IpAddr(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(18))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func (rcv *IpMessageMetadata) IpProtocol() IpProtocol {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(20))
	if o != 0 {
		return IpProtocol(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return IpProtocolNone
}

func (rcv *IpMessageMetadata) IpSrcPort() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(22))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) IpDstPort() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(24))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *IpMessageMetadata) AdapterType() SocketAdapter {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(26))
	if o != 0 {
		return SocketAdapter(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return SocketAdapterNONE
}

// Adapter returns the raw table backing the tagged DoIP/SomeIP payload, or nil if absent.
func (rcv *IpMessageMetadata) Adapter(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(28))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func IpMessageMetadataStart(builder *flatbuffers.Builder) { builder.StartObject(13) }

func IpMessageMetadataAddEthDstMac(builder *flatbuffers.Builder, v uint64) {
	builder.PrependUint64Slot(0, v, 0)
}
func IpMessageMetadataAddEthSrcMac(builder *flatbuffers.Builder, v uint64) {
	builder.PrependUint64Slot(1, v, 0)
}
func IpMessageMetadataAddEthEthertype(builder *flatbuffers.Builder, v uint16) {
	builder.PrependUint16Slot(2, v, 0)
}
func IpMessageMetadataAddEthTciPcp(builder *flatbuffers.Builder, v uint8) {
	builder.PrependUint8Slot(3, v, 0)
}
func IpMessageMetadataAddEthTciDei(builder *flatbuffers.Builder, v uint8) {
	builder.PrependUint8Slot(4, v, 0)
}
func IpMessageMetadataAddEthTciVid(builder *flatbuffers.Builder, v uint16) {
	builder.PrependUint16Slot(5, v, 0)
}
func IpMessageMetadataAddIpAddrType(builder *flatbuffers.Builder, v IpAddr) {
	builder.PrependByteSlot(6, byte(v), 0)
}
func IpMessageMetadataAddIpAddr(builder *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(7, v, 0)
}
func IpMessageMetadataAddIpProtocol(builder *flatbuffers.Builder, v IpProtocol) {
	builder.PrependByteSlot(8, byte(v), 0)
}
func IpMessageMetadataAddIpSrcPort(builder *flatbuffers.Builder, v uint16) {
	builder.PrependUint16Slot(9, v, 0)
}
func IpMessageMetadataAddIpDstPort(builder *flatbuffers.Builder, v uint16) {
	builder.PrependUint16Slot(10, v, 0)
}
func IpMessageMetadataAddAdapterType(builder *flatbuffers.Builder, v SocketAdapter) {
	builder.PrependByteSlot(11, byte(v), 0)
}
func IpMessageMetadataAddAdapter(builder *flatbuffers.Builder, v flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(12, v, 0)
}

func IpMessageMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
