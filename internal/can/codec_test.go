package can

import (
	"bytes"
	"testing"

	"github.com/kstaniek/ncodec/internal/mimetype"
)

func mkMessage(id uint32, busID, nodeID, ifaceID uint8, payload []byte) CanMessage {
	return CanMessage{
		FrameID:   id,
		FrameType: FrameTypeBase,
		Sender:    Sender{BusID: busID, NodeID: nodeID, InterfaceID: ifaceID},
		Payload:   payload,
	}
}

func newCodec(t *testing.T, mimeType string) *Codec {
	t.Helper()
	m, err := mimetype.Decode(mimeType)
	if err != nil {
		t.Fatalf("mimetype.Decode: %v", err)
	}
	return NewCodec(m, "test-model", 0)
}

func TestCodec_RoundTrip(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs;bus_id=1;node_id=2")
	in := []CanMessage{
		mkMessage(0x1A, 1, 2, 0, []byte{0x01, 0x02, 0x03}),
		mkMessage(0x1B, 1, 3, 0, []byte{}),
		mkMessage(0x1C, 2, 5, 1, bytes.Repeat([]byte{0xFF}, 8)),
	}
	c.Write(in)
	c.Flush()

	if len(c.Stream) == 0 {
		t.Fatal("Stream empty after Flush")
	}

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d messages, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].FrameID != in[i].FrameID {
			t.Errorf("msg %d: FrameID = %#x, want %#x", i, out[i].FrameID, in[i].FrameID)
		}
		if out[i].Sender != in[i].Sender {
			t.Errorf("msg %d: Sender = %+v, want %+v", i, out[i].Sender, in[i].Sender)
		}
		if !bytes.Equal(out[i].Payload, in[i].Payload) {
			t.Errorf("msg %d: Payload = %v, want %v", i, out[i].Payload, in[i].Payload)
		}
	}
}

func TestCodec_TimingRoundTrip(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs")
	msg := mkMessage(0x42, 0, 0, 0, []byte{0x09})
	msg.Timing = &Timing{Send: 100, Arb: 110, Recv: 120}
	c.Write([]CanMessage{msg})
	c.Flush()

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d messages, want 1", len(out))
	}
	if out[0].Timing == nil {
		t.Fatal("Timing missing after round trip")
	}
	if *out[0].Timing != *msg.Timing {
		t.Fatalf("Timing = %+v, want %+v", *out[0].Timing, *msg.Timing)
	}
}

func TestCodec_NodeIdSelfReceptionFilter(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs")
	c.Stat("Node_id", "26")

	c.Write([]CanMessage{
		mkMessage(26, 0, 0, 0, []byte{1}),
		mkMessage(27, 0, 0, 0, []byte{2}),
	})
	c.Flush()

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != 1 || out[0].FrameID != 27 {
		t.Fatalf("got %+v, want single message with FrameID 27", out)
	}
}

func TestCodec_TruncateClearsStream(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs")
	c.Write([]CanMessage{mkMessage(1, 0, 0, 0, nil)})
	c.Flush()
	if len(c.Stream) == 0 {
		t.Fatal("expected non-empty Stream before Truncate")
	}

	c.Truncate()
	if len(c.Stream) != 0 {
		t.Fatalf("Stream not cleared: %v", c.Stream)
	}
	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read after Truncate: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("got %d messages after Truncate, want 0", len(out))
	}
}

func TestCodec_TruncateThenRestoreStream(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs")
	msg := mkMessage(0x1A, 1, 2, 3, []byte("Hello"))
	c.Write([]CanMessage{msg})
	c.Flush()

	saved := c.Stream
	c.Truncate()
	if len(c.Stream) != 0 {
		t.Fatalf("Stream not cleared: %v", c.Stream)
	}

	c.Stream = saved
	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read after restore: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d messages, want 1", len(out))
	}
	if out[0].FrameID != msg.FrameID || out[0].Sender != msg.Sender || !bytes.Equal(out[0].Payload, msg.Payload) {
		t.Fatalf("restored message = %+v, want %+v", out[0], msg)
	}
}

func TestCodec_StatGetSet(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs")
	if got := c.Stat("bus"); got != "" {
		t.Fatalf("Stat(bus) = %q, want empty", got)
	}
	if got := c.Stat("bus", "veh0"); got != "veh0" {
		t.Fatalf("Stat(bus, veh0) = %q, want veh0", got)
	}
	if got := c.Stat("bus"); got != "veh0" {
		t.Fatalf("Stat(bus) after set = %q, want veh0", got)
	}
}

func TestCodec_ReadMalformedStream(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs")
	c.Stream = []byte{0x01, 0x02}
	if _, err := c.Read(); err == nil {
		t.Fatal("expected decode error on truncated stream")
	}
}

func TestCodec_WriteEmptyIsNoop(t *testing.T) {
	c := newCodec(t, "interface=stream;type=can;schema=fbs")
	c.Write(nil)
	c.Flush()
	if c.Stream != nil {
		t.Fatalf("Stream = %v, want nil after flushing an empty batch", c.Stream)
	}
}
