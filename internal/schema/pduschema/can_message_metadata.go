package pduschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// CanMessageMetadata is the transport subtree when TransportType == TransportMetadataCan.
type CanMessageMetadata struct {
	_tab flatbuffers.Table
}

func GetRootAsCanMessageMetadata(buf []byte, offset flatbuffers.UOffsetT) *CanMessageMetadata {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &CanMessageMetadata{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *CanMessageMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CanMessageMetadata) Table() flatbuffers.Table { return rcv._tab }

func (rcv *CanMessageMetadata) MessageFormat() CanMessageFormat {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return CanMessageFormat(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return CanMessageFormatBase
}

func (rcv *CanMessageMetadata) FrameType() CanFrameType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return CanFrameType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return CanFrameTypeBase
}

func (rcv *CanMessageMetadata) InterfaceId() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *CanMessageMetadata) NetworkId() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func CanMessageMetadataStart(builder *flatbuffers.Builder) { builder.StartObject(4) }

func CanMessageMetadataAddMessageFormat(builder *flatbuffers.Builder, messageFormat CanMessageFormat) {
	builder.PrependByteSlot(0, byte(messageFormat), 0)
}

func CanMessageMetadataAddFrameType(builder *flatbuffers.Builder, frameType CanFrameType) {
	builder.PrependByteSlot(1, byte(frameType), 0)
}

func CanMessageMetadataAddInterfaceId(builder *flatbuffers.Builder, interfaceId uint32) {
	builder.PrependUint32Slot(2, interfaceId, 0)
}

func CanMessageMetadataAddNetworkId(builder *flatbuffers.Builder, networkId uint32) {
	builder.PrependUint32Slot(3, networkId, 0)
}

func CanMessageMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
