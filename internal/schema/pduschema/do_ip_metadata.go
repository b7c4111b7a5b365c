package pduschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// DoIpMetadata is the socket-adapter payload when AdapterType == SocketAdapterDoIp.
type DoIpMetadata struct {
	_tab flatbuffers.Table
}

func GetRootAsDoIpMetadata(buf []byte, offset flatbuffers.UOffsetT) *DoIpMetadata {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &DoIpMetadata{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *DoIpMetadata) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *DoIpMetadata) Table() flatbuffers.Table { return rcv._tab }

func (rcv *DoIpMetadata) ProtocolVersion() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *DoIpMetadata) PayloadType() uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint16(o + rcv._tab.Pos)
	}
	return 0
}

func DoIpMetadataStart(builder *flatbuffers.Builder) { builder.StartObject(2) }

func DoIpMetadataAddProtocolVersion(builder *flatbuffers.Builder, protocolVersion uint8) {
	builder.PrependUint8Slot(0, protocolVersion, 0)
}

func DoIpMetadataAddPayloadType(builder *flatbuffers.Builder, payloadType uint16) {
	builder.PrependUint16Slot(1, payloadType, 0)
}

func DoIpMetadataEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
