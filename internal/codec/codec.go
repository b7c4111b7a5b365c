package codec

import (
	"github.com/kstaniek/ncodec/internal/can"
	"github.com/kstaniek/ncodec/internal/pdu"
)

// Codec is the operation set shared by the CAN and PDU codecs, parameterized
// over the message type each one carries. It lets code that only needs
// Write/Read/Flush/Truncate/Stat be written once and instantiated for either
// message kind, rather than duplicated or routed through `any`.
type Codec[M any] interface {
	Write(msgs []M)
	Read() ([]M, error)
	Flush()
	Truncate()
	Stat(param string, newValue ...string) string
}

var (
	_ Codec[can.CanMessage] = (*can.Codec)(nil)
	_ Codec[pdu.PduMessage] = (*pdu.Codec)(nil)
)
