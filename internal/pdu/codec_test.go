package pdu

import (
	"bytes"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/kstaniek/ncodec/internal/mimetype"
	"github.com/kstaniek/ncodec/internal/schema/pduschema"
)

func newCodec(t *testing.T, mimeType string) *Codec {
	t.Helper()
	m, err := mimetype.Decode(mimeType)
	if err != nil {
		t.Fatalf("mimetype.Decode: %v", err)
	}
	return NewCodec(m, "test-model", 0)
}

func TestCodec_RoundTrip_NoTransport(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs;swc_id=7;ecu_id=3")
	in := []PduMessage{
		{ID: 1, Payload: []byte{0xDE, 0xAD}},
		{ID: 2, Payload: []byte{}},
	}
	c.Write(in)
	c.Flush()

	// Layout: size prefix (0..3), root offset (4..7), file identifier (8..11).
	if len(c.Stream) < 12 || string(c.Stream[8:12]) != "SPDU" {
		t.Fatalf("Stream missing SPDU file identifier: %v", c.Stream)
	}

	// Read back through a codec without swc_id, so the self-reception filter
	// does not drop the PDUs that inherited swc_id=7.
	r := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	r.Stream = c.Stream
	out, err := r.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("got %d pdus, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].ID != in[i].ID {
			t.Errorf("pdu %d: ID = %d, want %d", i, out[i].ID, in[i].ID)
		}
		if !bytes.Equal(out[i].Payload, in[i].Payload) {
			t.Errorf("pdu %d: Payload = %v, want %v", i, out[i].Payload, in[i].Payload)
		}
		if out[i].SwcID != 7 || out[i].EcuID != 3 {
			t.Errorf("pdu %d: SwcID/EcuID = %d/%d, want 7/3 (inherited from MimeMap)", i, out[i].SwcID, out[i].EcuID)
		}
	}
}

func TestCodec_RoundTrip_IPv6SomeIP(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	msg := PduMessage{
		ID:        100,
		Payload:   []byte{1, 2, 3, 4},
		SwcID:     9,
		Transport: TransportIP,
		IP: &IPTransport{
			EthDstMAC:   0x0102030405,
			EthSrcMAC:   0xAABBCCDDEE,
			IPProtocol:  IPProtocolUDP,
			IPSrcPort:   30490,
			IPDstPort:   30491,
			AdapterType: SocketAdapterSomeIP,
			IPAddr: &IPAddr{V6: &IPv6Addr{
				SrcIP: [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1},
				DstIP: [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 2},
			}},
			Adapter: &SocketAdapter{SomeIP: &SomeIPAdapter{
				MessageID:  0x1234,
				Length:     4,
				RequestID:  0x5678,
				ReturnCode: 0,
			}},
		},
	}
	c.Write([]PduMessage{msg})
	c.Flush()

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d pdus, want 1", len(out))
	}
	got := out[0]
	if got.IP == nil {
		t.Fatal("IP transport missing after round trip")
	}
	if got.IP.IPAddr == nil || got.IP.IPAddr.V6 == nil {
		t.Fatal("IPv6 address missing after round trip")
	}
	if got.IP.IPAddr.V6.SrcIP != msg.IP.IPAddr.V6.SrcIP || got.IP.IPAddr.V6.DstIP != msg.IP.IPAddr.V6.DstIP {
		t.Fatalf("IPv6 addr = %+v, want %+v", got.IP.IPAddr.V6, msg.IP.IPAddr.V6)
	}
	if got.IP.Adapter == nil || got.IP.Adapter.SomeIP == nil {
		t.Fatal("SomeIP adapter missing after round trip")
	}
	if *got.IP.Adapter.SomeIP != *msg.IP.Adapter.SomeIP {
		t.Fatalf("SomeIP adapter = %+v, want %+v", *got.IP.Adapter.SomeIP, *msg.IP.Adapter.SomeIP)
	}
}

func TestCodec_RoundTrip_IPv4DoIP(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	msg := PduMessage{
		ID:        200,
		Payload:   []byte{0xAA},
		Transport: TransportIP,
		IP: &IPTransport{
			IPProtocol:  IPProtocolTCP,
			AdapterType: SocketAdapterDoIP,
			IPAddr: &IPAddr{V4: &IPv4Addr{
				SrcIP: 0xC0A80001,
				DstIP: 0xC0A80002,
			}},
			Adapter: &SocketAdapter{DoIP: &DoIPAdapter{ProtocolVersion: 2, PayloadType: 0x8001}},
		},
	}
	c.Write([]PduMessage{msg})
	c.Flush()

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got := out[0]
	if got.IP.IPAddr == nil || got.IP.IPAddr.V4 == nil {
		t.Fatal("IPv4 address missing after round trip")
	}
	if *got.IP.IPAddr.V4 != *msg.IP.IPAddr.V4 {
		t.Fatalf("IPv4 addr = %+v, want %+v", *got.IP.IPAddr.V4, *msg.IP.IPAddr.V4)
	}
	if got.IP.Adapter == nil || got.IP.Adapter.DoIP == nil {
		t.Fatal("DoIP adapter missing after round trip")
	}
	if *got.IP.Adapter.DoIP != *msg.IP.Adapter.DoIP {
		t.Fatalf("DoIP adapter = %+v, want %+v", *got.IP.Adapter.DoIP, *msg.IP.Adapter.DoIP)
	}
}

func TestCodec_RoundTrip_CanTransport(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	msg := PduMessage{
		ID:        300,
		Payload:   []byte{1},
		Transport: TransportCan,
		Can: &CanTransport{
			Format:      CanMessageFormatFd,
			FrameType:   CanFrameTypeExtended,
			InterfaceID: 1,
			NetworkID:   2,
		},
	}
	c.Write([]PduMessage{msg})
	c.Flush()

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if out[0].Can == nil || *out[0].Can != *msg.Can {
		t.Fatalf("Can transport = %+v, want %+v", out[0].Can, msg.Can)
	}
}

func TestCodec_SwcIdSelfReceptionFilter(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs;swc_id=5")
	c.Write([]PduMessage{
		{ID: 1, Payload: []byte{1}},            // inherits swc_id=5, filtered on Read
		{ID: 2, Payload: []byte{2}, SwcID: 9},   // explicit swc_id, survives filter
	})
	c.Flush()

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != 1 || out[0].ID != 2 {
		t.Fatalf("got %+v, want single pdu with ID 2", out)
	}

	c.Stat("swc_id", "9")
	out, err = c.Read()
	if err != nil {
		t.Fatalf("Read after Stat change: %v", err)
	}
	if len(out) != 1 || out[0].ID != 1 {
		t.Fatalf("got %+v, want single pdu with ID 1 after filter swc_id changed to 9", out)
	}
}

// TestCodec_UnknownTransportTagIsNone crafts a Pdu carrying a transport tag
// value outside the known set, with a transport subtree attached anyway, and
// checks Read treats it as transport_type=None: no exception, both metadata
// subtrees nil.
func TestCodec_UnknownTransportTagIsNone(t *testing.T) {
	b := flatbuffers.NewBuilder(256)

	pduschema.CanMessageMetadataStart(b)
	pduschema.CanMessageMetadataAddInterfaceId(b, 1)
	transport := pduschema.CanMessageMetadataEnd(b)

	payload := b.CreateByteVector([]byte{0xFF})

	pduschema.PduStart(b)
	pduschema.PduAddId(b, 42)
	pduschema.PduAddPayload(b, payload)
	pduschema.PduAddTransportType(b, pduschema.TransportMetadata(99))
	pduschema.PduAddTransport(b, transport)
	p := pduschema.PduEnd(b)

	pduschema.StreamStartPdusVector(b, 1)
	b.PrependUOffsetT(p)
	pdus := b.EndVector(1)

	pduschema.StreamStart(b)
	pduschema.StreamAddPdus(b, pdus)
	root := pduschema.StreamEnd(b)
	b.FinishSizePrefixedWithFileIdentifier(root, []byte(pduschema.FileIdentifier))

	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	c.Stream = b.FinishedBytes()

	out, err := c.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("got %d pdus, want 1", len(out))
	}
	if out[0].Can != nil || out[0].IP != nil {
		t.Fatalf("got Can=%+v IP=%+v, want both nil for unrecognized transport tag", out[0].Can, out[0].IP)
	}
	if out[0].Transport != TransportNone {
		t.Fatalf("got Transport=%v, want TransportNone for unrecognized tag", out[0].Transport)
	}
}

func TestCodec_TruncateClearsStream(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	c.Write([]PduMessage{{ID: 1, Payload: []byte{1}}})
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
		t.Fatalf("got %d pdus after Truncate, want 0", len(out))
	}
}

func TestCodec_TruncateThenRestoreStream(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	msg := PduMessage{ID: 7, Payload: []byte{0xBE, 0xEF}, SwcID: 1, EcuID: 2}
	c.Write([]PduMessage{msg})
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
		t.Fatalf("got %d pdus, want 1", len(out))
	}
	if out[0].ID != msg.ID || out[0].SwcID != msg.SwcID || out[0].EcuID != msg.EcuID || !bytes.Equal(out[0].Payload, msg.Payload) {
		t.Fatalf("restored pdu = %+v, want %+v", out[0], msg)
	}
}

func TestCodec_StatGetSet(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	if got := c.Stat("ecu_id"); got != "" {
		t.Fatalf("Stat(ecu_id) = %q, want empty", got)
	}
	if got := c.Stat("ecu_id", "4"); got != "4" {
		t.Fatalf("Stat(ecu_id, 4) = %q, want 4", got)
	}
}

func TestCodec_ReadMalformedStream(t *testing.T) {
	c := newCodec(t, "interface=stream;type=pdu;schema=fbs")
	c.Stream = []byte{0x01}
	if _, err := c.Read(); err == nil {
		t.Fatal("expected decode error on truncated stream")
	}
}
