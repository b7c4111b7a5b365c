package pduschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// FileIdentifier is the 4-byte ASCII tag the PDU container always carries
// after its size prefix and root offset (bytes 8..11 of the stream),
// disambiguating it from the (untagged) CAN container. Preserved for wire compatibility with existing peers.
const FileIdentifier = "SPDU"

// Stream is the PDU container root: a single pdus vector.
type Stream struct {
	_tab flatbuffers.Table
}

func GetRootAsStream(buf []byte, offset flatbuffers.UOffsetT) *Stream {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Stream{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Stream) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Stream) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Stream) Pdus(obj *Pdu, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		x := a + flatbuffers.UOffsetT(j)*4
		x = rcv._tab.Indirect(x)
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Stream) PdusLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func StreamStart(builder *flatbuffers.Builder) { builder.StartObject(1) }

func StreamAddPdus(builder *flatbuffers.Builder, pdus flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, pdus, 0)
}

func StreamStartPdusVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func StreamEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
