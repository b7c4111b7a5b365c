package pduschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Pdu is one element of the Stream.pdus vector.
type Pdu struct {
	_tab flatbuffers.Table
}

func GetRootAsPdu(buf []byte, offset flatbuffers.UOffsetT) *Pdu {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Pdu{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Pdu) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Pdu) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Pdu) Id() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Pdu) PayloadLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Pdu) PayloadBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o)
	}
	return nil
}

func (rcv *Pdu) SwcId() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Pdu) EcuId() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Pdu) TransportType() TransportMetadata {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return TransportMetadata(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return TransportMetadataNONE
}

// Transport returns the raw table backing the tagged Can/Ip transport
// subtree, or false if none is present.
func (rcv *Pdu) Transport(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func PduStart(builder *flatbuffers.Builder) { builder.StartObject(6) }

func PduAddId(builder *flatbuffers.Builder, id uint32) {
	builder.PrependUint32Slot(0, id, 0)
}

func PduAddPayload(builder *flatbuffers.Builder, payload flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, payload, 0)
}

func PduStartPayloadVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(1, numElems, 1)
}

func PduAddSwcId(builder *flatbuffers.Builder, swcId uint32) {
	builder.PrependUint32Slot(2, swcId, 0)
}

func PduAddEcuId(builder *flatbuffers.Builder, ecuId uint32) {
	builder.PrependUint32Slot(3, ecuId, 0)
}

func PduAddTransportType(builder *flatbuffers.Builder, transportType TransportMetadata) {
	builder.PrependByteSlot(4, byte(transportType), 0)
}

func PduAddTransport(builder *flatbuffers.Builder, transport flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(5, transport, 0)
}

func PduEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
