package canschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// CanFrame is the table carried by a Frame union when FType == FrameUnionCanFrame.
type CanFrame struct {
	_tab flatbuffers.Table
}

func GetRootAsCanFrame(buf []byte, offset flatbuffers.UOffsetT) *CanFrame {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &CanFrame{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *CanFrame) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CanFrame) Table() flatbuffers.Table { return rcv._tab }

func (rcv *CanFrame) FrameId() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *CanFrame) FrameType() CanFrameType {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return CanFrameType(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return CanFrameTypeBase
}

func (rcv *CanFrame) PayloadLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *CanFrame) PayloadBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.ByteVector(o)
	}
	return nil
}

func (rcv *CanFrame) BusId() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *CanFrame) NodeId() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *CanFrame) InterfaceId() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(14))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

// Timing returns the optional Timing subtable, or nil if absent.
func (rcv *CanFrame) Timing(obj *Timing) *Timing {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(16))
	if o != 0 {
		x := rcv._tab.Indirect(o + rcv._tab.Pos)
		if obj == nil {
			obj = new(Timing)
		}
		obj.Init(rcv._tab.Bytes, x)
		return obj
	}
	return nil
}

func CanFrameStart(builder *flatbuffers.Builder) { builder.StartObject(7) }

func CanFrameAddFrameId(builder *flatbuffers.Builder, frameId uint32) {
	builder.PrependUint32Slot(0, frameId, 0)
}

func CanFrameAddFrameType(builder *flatbuffers.Builder, frameType CanFrameType) {
	builder.PrependByteSlot(1, byte(frameType), 0)
}

func CanFrameAddPayload(builder *flatbuffers.Builder, payload flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, payload, 0)
}

func CanFrameStartPayloadVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(1, numElems, 1)
}

func CanFrameAddBusId(builder *flatbuffers.Builder, busId uint8) {
	builder.PrependUint8Slot(3, busId, 0)
}

func CanFrameAddNodeId(builder *flatbuffers.Builder, nodeId uint8) {
	builder.PrependUint8Slot(4, nodeId, 0)
}

func CanFrameAddInterfaceId(builder *flatbuffers.Builder, interfaceId uint8) {
	builder.PrependUint8Slot(5, interfaceId, 0)
}

func CanFrameAddTiming(builder *flatbuffers.Builder, timing flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(6, timing, 0)
}

func CanFrameEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
