package codec

import (
	"github.com/kstaniek/ncodec/internal/can"
	"github.com/kstaniek/ncodec/internal/metrics"
	"github.com/kstaniek/ncodec/internal/mimetype"
	"github.com/kstaniek/ncodec/internal/ncodecerr"
	"github.com/kstaniek/ncodec/internal/pdu"
)

// NewCanCodec constructs a CAN codec directly from an already-decoded
// MimeMap, bypassing type dispatch. Mirrors the reference
// CodecFactory.create_can_codec.
func NewCanCodec(mimeMap map[string]string, modelName string, simulationTime float64) *can.Codec {
	return can.NewCodec(mimeMap, modelName, simulationTime)
}

// NewPduCodec constructs a PDU codec directly from an already-decoded
// MimeMap. Mirrors the reference CodecFactory.create_pdu_codec.
func NewPduCodec(mimeMap map[string]string, modelName string, simulationTime float64) *pdu.Codec {
	return pdu.NewCodec(mimeMap, modelName, simulationTime)
}

// NewFromMimeType decodes mimeType and dispatches to NewCanCodec or
// NewPduCodec based on its "type" parameter. The message kind isn't known
// until the MIME string is parsed at runtime, so the return type can't be
// Codec[M] for a fixed M; callers type-assert to *can.Codec or *pdu.Codec
// (each of which implements Codec[CanMessage] / Codec[PduMessage], see
// codec.go).
func NewFromMimeType(mimeType, modelName string, simulationTime float64) (any, error) {
	mimeMap, err := mimetype.Decode(mimeType)
	if err != nil {
		return nil, err
	}

	switch mimeMap["type"] {
	case "can":
		return NewCanCodec(mimeMap, modelName, simulationTime), nil
	case "pdu":
		return NewPduCodec(mimeMap, modelName, simulationTime), nil
	default:
		metrics.IncConfigErrors()
		return nil, ncodecerr.NewConfigError("unsupported codec type: %s", mimeMap["type"])
	}
}
