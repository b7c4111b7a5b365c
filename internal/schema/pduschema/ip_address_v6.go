package pduschema

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// IpAddressV6 is a fixed-size struct of 8 big words forming one IPv6
// address; it is embedded inline wherever it is used, never boxed behind
// its own offset.
type IpAddressV6 struct {
	_tab flatbuffers.Struct
}

func (rcv *IpAddressV6) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *IpAddressV6) Table() flatbuffers.Table { return rcv._tab.Table }

func (rcv *IpAddressV6) V0() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 0) }
func (rcv *IpAddressV6) V1() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 2) }
func (rcv *IpAddressV6) V2() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 4) }
func (rcv *IpAddressV6) V3() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 6) }
func (rcv *IpAddressV6) V4() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 8) }
func (rcv *IpAddressV6) V5() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 10) }
func (rcv *IpAddressV6) V6() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 12) }
func (rcv *IpAddressV6) V7() uint16 { return rcv._tab.GetUint16(rcv._tab.Pos + 14) }

// CreateIpAddressV6 writes the struct inline on the builder stack and
// returns its offset; it must be called immediately before the field that
// embeds it is added to the enclosing table (flatbuffers struct rule).
func CreateIpAddressV6(builder *flatbuffers.Builder, v0, v1, v2, v3, v4, v5, v6, v7 uint16) flatbuffers.UOffsetT {
	builder.Prep(2, 16)
	builder.PrependUint16(v7)
	builder.PrependUint16(v6)
	builder.PrependUint16(v5)
	builder.PrependUint16(v4)
	builder.PrependUint16(v3)
	builder.PrependUint16(v2)
	builder.PrependUint16(v1)
	builder.PrependUint16(v0)
	return builder.Offset()
}
