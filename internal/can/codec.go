package can

import (
	"strconv"
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/kstaniek/ncodec/internal/logging"
	"github.com/kstaniek/ncodec/internal/metrics"
	"github.com/kstaniek/ncodec/internal/ncodecerr"
	"github.com/kstaniek/ncodec/internal/schema/canschema"
)

// Codec encodes and decodes CAN frame streams over a size-prefixed
// flatbuffers container (internal/schema/canschema). One Codec corresponds
// to one codec channel: a MimeMap, a resident wire buffer
// (Stream), and the model/simulation-time pair the channel was opened with.
type Codec struct {
	mu sync.Mutex

	MimeMap        map[string]string
	Stream         []byte
	ModelName      string
	SimulationTime float64

	builder *flatbuffers.Builder
	frames  []flatbuffers.UOffsetT
}

// NewCodec constructs a CAN codec bound to mimeMap. mimeMap is typically the
// result of mimetype.Decode and is expected to already carry type=can.
func NewCodec(mimeMap map[string]string, modelName string, simulationTime float64) *Codec {
	return &Codec{
		MimeMap:        mimeMap,
		ModelName:      modelName,
		SimulationTime: simulationTime,
		builder:        flatbuffers.NewBuilder(1024),
	}
}

// Write stages msgs for the next Flush. It never touches Stream directly.
func (c *Codec) Write(msgs []CanMessage) {
	if len(msgs) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, msg := range msgs {
		payload := c.builder.CreateByteVector(msg.Payload)

		var timing flatbuffers.UOffsetT
		if msg.Timing != nil {
			canschema.TimingStart(c.builder)
			canschema.TimingAddSend(c.builder, msg.Timing.Send)
			canschema.TimingAddArb(c.builder, msg.Timing.Arb)
			canschema.TimingAddRecv(c.builder, msg.Timing.Recv)
			timing = canschema.TimingEnd(c.builder)
		}

		canschema.CanFrameStart(c.builder)
		canschema.CanFrameAddFrameId(c.builder, msg.FrameID)
		canschema.CanFrameAddFrameType(c.builder, canschema.CanFrameType(msg.FrameType))
		canschema.CanFrameAddPayload(c.builder, payload)
		canschema.CanFrameAddBusId(c.builder, msg.Sender.BusID)
		canschema.CanFrameAddNodeId(c.builder, msg.Sender.NodeID)
		canschema.CanFrameAddInterfaceId(c.builder, msg.Sender.InterfaceID)
		if msg.Timing != nil {
			canschema.CanFrameAddTiming(c.builder, timing)
		}
		canFrame := canschema.CanFrameEnd(c.builder)

		canschema.FrameStart(c.builder)
		canschema.FrameAddFType(c.builder, canschema.FrameUnionCanFrame)
		canschema.FrameAddF(c.builder, canFrame)
		frame := canschema.FrameEnd(c.builder)

		c.frames = append(c.frames, frame)
		metrics.IncFramesEncoded()
	}
}

// streamFinalize closes the in-progress builder into a size-prefixed buffer
// and returns a copy of it; the caller (Flush) resets the builder. Returns
// nil if nothing was written since the last Flush or Truncate.
func (c *Codec) streamFinalize() []byte {
	if len(c.frames) == 0 {
		return nil
	}

	canschema.StreamStartFramesVector(c.builder, len(c.frames))
	for i := len(c.frames) - 1; i >= 0; i-- {
		c.builder.PrependUOffsetT(c.frames[i])
	}
	frameVec := c.builder.EndVector(len(c.frames))

	canschema.StreamStart(c.builder)
	canschema.StreamAddFrames(c.builder, frameVec)
	stream := canschema.StreamEnd(c.builder)
	c.builder.FinishSizePrefixed(stream)

	buf := c.builder.FinishedBytes()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

// Flush finalizes any staged frames into Stream and starts a fresh builder.
// An empty batch leaves Stream untouched.
func (c *Codec) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	buf := c.streamFinalize()
	c.builder = flatbuffers.NewBuilder(1024)
	c.frames = nil
	if buf == nil {
		return
	}
	c.Stream = buf
}

// framesFromStream decodes every Frame table out of Stream. The root offset
// sits directly after the 4-byte size prefix; the CAN container carries no
// file identifier.
func (c *Codec) framesFromStream() ([]*canschema.CanFrame, error) {
	if len(c.Stream) == 0 {
		return nil, nil
	}
	if len(c.Stream) < 4 {
		metrics.IncMalformedBuffers()
		return nil, ncodecerr.NewDecodeError("stream shorter than size prefix (%d bytes)", len(c.Stream))
	}

	stream := canschema.GetRootAsStream(c.Stream, 4)
	out := make([]*canschema.CanFrame, 0, stream.FramesLength())
	for i := 0; i < stream.FramesLength(); i++ {
		var frame canschema.Frame
		if !stream.Frames(&frame, i) {
			continue
		}
		if frame.FType() != canschema.FrameUnionCanFrame {
			continue
		}
		var tab flatbuffers.Table
		if !frame.F(&tab) {
			continue
		}
		canFrame := &canschema.CanFrame{}
		canFrame.Init(tab.Bytes, tab.Pos)
		out = append(out, canFrame)
	}
	return out, nil
}

// Read decodes Stream into messages, dropping any frame whose FrameId
// matches the channel's Node_id (self-reception filter). Preserved
// case-sensitive key name and frame_id-vs-node_id comparison match the
// reference codec exactly. A buffer too malformed to traverse yields a
// DecodeError.
func (c *Codec) Read() (msgs []CanMessage, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			metrics.IncMalformedBuffers()
			msgs, err = nil, ncodecerr.NewDecodeError("malformed stream: %v", r)
		}
	}()

	frames, err := c.framesFromStream()
	if err != nil {
		return nil, err
	}

	var nodeID uint32
	filterNode := false
	if s := c.stat("Node_id"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 32); err == nil {
			nodeID = uint32(v)
			filterNode = true
		}
	}

	msgs = make([]CanMessage, 0, len(frames))
	for _, f := range frames {
		if filterNode && f.FrameId() == nodeID {
			metrics.IncFramesFiltered()
			continue
		}
		msg := CanMessage{
			FrameID:   f.FrameId(),
			FrameType: f.FrameType(),
			Sender: Sender{
				BusID:       f.BusId(),
				NodeID:      f.NodeId(),
				InterfaceID: f.InterfaceId(),
			},
			Payload: f.PayloadBytes(),
		}
		var t canschema.Timing
		if f.Timing(&t) != nil {
			msg.Timing = &Timing{Send: t.Send(), Arb: t.Arb(), Recv: t.Recv()}
		}
		msgs = append(msgs, msg)
		metrics.IncFramesDecoded()
	}
	logging.L().Debug("can_read", "frames", len(frames), "delivered", len(msgs))
	return msgs, nil
}

// Truncate discards Stream and any staged-but-unflushed frames.
func (c *Codec) Truncate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.builder = flatbuffers.NewBuilder(1024)
	c.frames = nil
	c.Stream = nil
}

// Stat reads (and optionally sets) a MimeMap parameter. Setting a value
// that was not previously present still returns the new value; reading a
// parameter that was never set returns "".
func (c *Codec) Stat(param string, newValue ...string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(newValue) > 0 {
		return c.statSet(param, newValue[0])
	}
	return c.stat(param)
}

func (c *Codec) stat(param string) string {
	if c.MimeMap == nil {
		return ""
	}
	return c.MimeMap[param]
}

func (c *Codec) statSet(param, value string) string {
	if c.MimeMap == nil {
		c.MimeMap = make(map[string]string)
	}
	c.MimeMap[param] = value
	return value
}
