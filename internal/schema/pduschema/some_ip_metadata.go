package pduschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// SomeIpMetadata is the socket-adapter payload when AdapterType == SocketAdapterSomeIp.
type SomeIpMetadata struct {
	_tab flatbuffers.Table
}

func GetRootAsSomeIpMetadata(buf []byte, offset flatbuffers.UOffsetT) *SomeIpMetadata {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &SomeIpMetadata{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *SomeIpMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *SomeIpMetadata) Table() flatbuffers.Table { return rcv._tab }

func (rcv *SomeIpMetadata) MessageId() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SomeIpMetadata) Length() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SomeIpMetadata) RequestId() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SomeIpMetadata) ProtocolVersion() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SomeIpMetadata) InterfaceVersion() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SomeIpMetadata) MessageType() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *SomeIpMetadata) ReturnCode() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func SomeIpMetadataStart(builder *flatbuffers.Builder) { builder.StartObject(7) }

func SomeIpMetadataAddMessageId(builder *flatbuffers.Builder, messageId uint32) {
	builder.PrependUint32Slot(0, messageId, 0)
}

func SomeIpMetadataAddLength(builder *flatbuffers.Builder, length uint32) {
	builder.PrependUint32Slot(1, length, 0)
}

func SomeIpMetadataAddRequestId(builder *flatbuffers.Builder, requestId uint32) {
	builder.PrependUint32Slot(2, requestId, 0)
}

func SomeIpMetadataAddProtocolVersion(builder *flatbuffers.Builder, protocolVersion uint8) {
	builder.PrependUint8Slot(3, protocolVersion, 0)
}

func SomeIpMetadataAddInterfaceVersion(builder *flatbuffers.Builder, interfaceVersion uint8) {
	builder.PrependUint8Slot(4, interfaceVersion, 0)
}

func SomeIpMetadataAddMessageType(builder *flatbuffers.Builder, messageType uint8) {
	builder.PrependUint8Slot(5, messageType, 0)
}

func SomeIpMetadataAddReturnCode(builder *flatbuffers.Builder, returnCode uint8) {
	builder.PrependUint8Slot(6, returnCode, 0)
}

func SomeIpMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
