package canschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Frame is the union carrier wrapping a CanFrame (or, in the future, a
// CanFdFrame) inside the Stream.frames vector.
type Frame struct {
	_tab flatbuffers.Table
}

func GetRootAsFrame(buf []byte, offset flatbuffers.UOffsetT) *Frame {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Frame{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Frame) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Frame) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Frame) FType() FrameUnion {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return FrameUnion(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return FrameUnionNONE
}

// F resolves the union value table into obj; the caller must already know
// (via FType) which concrete type obj should be initialized as.
func (rcv *Frame) F(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func FrameStart(builder *flatbuffers.Builder) { builder.StartObject(2) }

func FrameAddFType(builder *flatbuffers.Builder, fType FrameUnion) {
	builder.PrependByteSlot(0, byte(fType), 0)
}

func FrameAddF(builder *flatbuffers.Builder, f flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, f, 0)
}

func FrameEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
