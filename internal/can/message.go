// Package can implements the CAN frame codec: CanMessage plus a Codec
// providing Write/Flush/Read/Truncate/Stat over a length-prefixed
// flatbuffers stream (internal/schema/canschema).
package can

import "github.com/kstaniek/ncodec/internal/schema/canschema"

// FrameType mirrors canschema.CanFrameType at the domain-model level so
// callers of this package never import the schema bindings directly.
type FrameType = canschema.CanFrameType

const (
	FrameTypeBase       = canschema.CanFrameTypeBase
	FrameTypeExtended   = canschema.CanFrameTypeExtended
	FrameTypeFdBase     = canschema.CanFrameTypeFdBase
	FrameTypeFdExtended = canschema.CanFrameTypeFdExtended
)

// Sender identifies the bus/node/interface triple that sent a frame.
type Sender struct {
	BusID       uint8
	NodeID      uint8
	InterfaceID uint8
}

// Timing carries optional send/arbitration/receive timestamps. A nil
// *Timing on a CanMessage means "not present" on the wire.
type Timing struct {
	Send uint64
	Arb  uint64
	Recv uint64
}

// CanMessage is one CAN frame as exchanged with a codec caller.
type CanMessage struct {
	FrameID   uint32
	FrameType FrameType
	Sender    Sender
	Timing    *Timing
	Payload   []byte
}
