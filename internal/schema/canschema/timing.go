package canschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Timing carries optional per-frame send/arbitration/receive timestamps.
type Timing struct {
	_tab flatbuffers.Table
}

func GetRootAsTiming(buf []byte, offset flatbuffers.UOffsetT) *Timing {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Timing{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Timing) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Timing) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Timing) Send() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Timing) Arb() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Timing) Recv() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func TimingStart(builder *flatbuffers.Builder) { builder.StartObject(3) }

func TimingAddSend(builder *flatbuffers.Builder, send uint64) {
	builder.PrependUint64Slot(0, send, 0)
}

func TimingAddArb(builder *flatbuffers.Builder, arb uint64) {
	builder.PrependUint64Slot(1, arb, 0)
}

func TimingAddRecv(builder *flatbuffers.Builder, recv uint64) {
	builder.PrependUint64Slot(2, recv, 0)
}

func TimingEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
