package pdu

import (
	"strconv"
	"sync"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/kstaniek/ncodec/internal/logging"
	"github.com/kstaniek/ncodec/internal/metrics"
	"github.com/kstaniek/ncodec/internal/ncodecerr"
	"github.com/kstaniek/ncodec/internal/schema/pduschema"
)

// Codec encodes and decodes PDU streams over a size-prefixed, "SPDU"-tagged
// flatbuffers container (internal/schema/pduschema).
type Codec struct {
	mu sync.Mutex

	MimeMap        map[string]string
	Stream         []byte
	ModelName      string
	SimulationTime float64

	builder *flatbuffers.Builder
	pdus    []flatbuffers.UOffsetT
}

// NewCodec constructs a PDU codec bound to mimeMap. mimeMap is typically the
// result of mimetype.Decode and is expected to already carry type=pdu.
func NewCodec(mimeMap map[string]string, modelName string, simulationTime float64) *Codec {
	return &Codec{
		MimeMap:        mimeMap,
		ModelName:      modelName,
		SimulationTime: simulationTime,
		builder:        flatbuffers.NewBuilder(1024),
	}
}

func (c *Codec) emitIPv4(addr *IPv4Addr) flatbuffers.UOffsetT {
	pduschema.IpV4Start(c.builder)
	pduschema.IpV4AddSrcAddr(c.builder, addr.SrcIP)
	pduschema.IpV4AddDstAddr(c.builder, addr.DstIP)
	return pduschema.IpV4End(c.builder)
}

func (c *Codec) emitIPv6(addr *IPv6Addr) flatbuffers.UOffsetT {
	pduschema.IpV6Start(c.builder)
	src := pduschema.CreateIpAddressV6(c.builder,
		addr.SrcIP[0], addr.SrcIP[1], addr.SrcIP[2], addr.SrcIP[3],
		addr.SrcIP[4], addr.SrcIP[5], addr.SrcIP[6], addr.SrcIP[7])
	pduschema.IpV6AddSrcAddr(c.builder, src)
	dst := pduschema.CreateIpAddressV6(c.builder,
		addr.DstIP[0], addr.DstIP[1], addr.DstIP[2], addr.DstIP[3],
		addr.DstIP[4], addr.DstIP[5], addr.DstIP[6], addr.DstIP[7])
	pduschema.IpV6AddDstAddr(c.builder, dst)
	return pduschema.IpV6End(c.builder)
}

func (c *Codec) emitDoIPAdapter(a *DoIPAdapter) flatbuffers.UOffsetT {
	pduschema.DoIpMetadataStart(c.builder)
	pduschema.DoIpMetadataAddProtocolVersion(c.builder, a.ProtocolVersion)
	pduschema.DoIpMetadataAddPayloadType(c.builder, a.PayloadType)
	return pduschema.DoIpMetadataEnd(c.builder)
}

func (c *Codec) emitSomeIPAdapter(a *SomeIPAdapter) flatbuffers.UOffsetT {
	pduschema.SomeIpMetadataStart(c.builder)
	pduschema.SomeIpMetadataAddMessageId(c.builder, a.MessageID)
	pduschema.SomeIpMetadataAddLength(c.builder, a.Length)
	pduschema.SomeIpMetadataAddRequestId(c.builder, a.RequestID)
	pduschema.SomeIpMetadataAddProtocolVersion(c.builder, a.ProtocolVersion)
	pduschema.SomeIpMetadataAddInterfaceVersion(c.builder, a.InterfaceVersion)
	pduschema.SomeIpMetadataAddMessageType(c.builder, a.MessageType)
	pduschema.SomeIpMetadataAddReturnCode(c.builder, a.ReturnCode)
	return pduschema.SomeIpMetadataEnd(c.builder)
}

func (c *Codec) emitCanTransport(t *CanTransport) flatbuffers.UOffsetT {
	pduschema.CanMessageMetadataStart(c.builder)
	pduschema.CanMessageMetadataAddMessageFormat(c.builder, t.Format)
	pduschema.CanMessageMetadataAddFrameType(c.builder, t.FrameType)
	pduschema.CanMessageMetadataAddInterfaceId(c.builder, t.InterfaceID)
	pduschema.CanMessageMetadataAddNetworkId(c.builder, t.NetworkID)
	return pduschema.CanMessageMetadataEnd(c.builder)
}

func (c *Codec) emitIPTransport(t *IPTransport) flatbuffers.UOffsetT {
	var addrOff flatbuffers.UOffsetT
	addrType := pduschema.IpAddrNONE
	if t.IPAddr != nil {
		switch {
		case t.IPAddr.V4 != nil:
			addrOff = c.emitIPv4(t.IPAddr.V4)
			addrType = pduschema.IpAddrV4
		case t.IPAddr.V6 != nil:
			addrOff = c.emitIPv6(t.IPAddr.V6)
			addrType = pduschema.IpAddrV6
		}
	}

	var adapterOff flatbuffers.UOffsetT
	adapterType := pduschema.SocketAdapterNONE
	if t.Adapter != nil {
		switch {
		case t.Adapter.DoIP != nil:
			adapterOff = c.emitDoIPAdapter(t.Adapter.DoIP)
			adapterType = pduschema.SocketAdapterDoIp
		case t.Adapter.SomeIP != nil:
			adapterOff = c.emitSomeIPAdapter(t.Adapter.SomeIP)
			adapterType = pduschema.SocketAdapterSomeIp
		}
	}

	pduschema.IpMessageMetadataStart(c.builder)
	pduschema.IpMessageMetadataAddEthDstMac(c.builder, t.EthDstMAC)
	pduschema.IpMessageMetadataAddEthSrcMac(c.builder, t.EthSrcMAC)
	pduschema.IpMessageMetadataAddEthEthertype(c.builder, t.EthEtherType)
	pduschema.IpMessageMetadataAddEthTciPcp(c.builder, t.EthTciPCP)
	pduschema.IpMessageMetadataAddEthTciDei(c.builder, t.EthTciDEI)
	pduschema.IpMessageMetadataAddEthTciVid(c.builder, t.EthTciVID)
	if addrOff != 0 {
		pduschema.IpMessageMetadataAddIpAddrType(c.builder, addrType)
		pduschema.IpMessageMetadataAddIpAddr(c.builder, addrOff)
	}
	pduschema.IpMessageMetadataAddIpProtocol(c.builder, t.IPProtocol)
	pduschema.IpMessageMetadataAddIpSrcPort(c.builder, t.IPSrcPort)
	pduschema.IpMessageMetadataAddIpDstPort(c.builder, t.IPDstPort)
	if adapterOff != 0 {
		pduschema.IpMessageMetadataAddAdapterType(c.builder, adapterType)
		pduschema.IpMessageMetadataAddAdapter(c.builder, adapterOff)
	}
	return pduschema.IpMessageMetadataEnd(c.builder)
}

// Write stages msgs for the next Flush. For each message, a zero SwcID or
// EcuID is replaced with the channel's MimeMap swc_id/ecu_id (if set) before
// encoding — matching the reference codec's default-inheritance rule.
func (c *Codec) Write(msgs []PduMessage) {
	if len(msgs) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, msg := range msgs {
		var transport flatbuffers.UOffsetT
		switch msg.Transport {
		case TransportCan:
			if msg.Can != nil {
				transport = c.emitCanTransport(msg.Can)
			}
		case TransportIP:
			if msg.IP != nil {
				transport = c.emitIPTransport(msg.IP)
			}
		}

		payload := c.builder.CreateByteVector(msg.Payload)

		swcID := msg.SwcID
		if swcID == 0 {
			swcID = c.mimeMapUint32("swc_id")
		}
		ecuID := msg.EcuID
		if ecuID == 0 {
			ecuID = c.mimeMapUint32("ecu_id")
		}

		pduschema.PduStart(c.builder)
		pduschema.PduAddId(c.builder, msg.ID)
		pduschema.PduAddPayload(c.builder, payload)
		pduschema.PduAddSwcId(c.builder, swcID)
		pduschema.PduAddEcuId(c.builder, ecuID)
		pduschema.PduAddTransportType(c.builder, msg.Transport)
		if transport != 0 {
			pduschema.PduAddTransport(c.builder, transport)
		}
		p := pduschema.PduEnd(c.builder)

		c.pdus = append(c.pdus, p)
		metrics.IncPdusEncoded()
	}
}

func (c *Codec) mimeMapUint32(key string) uint32 {
	s, ok := c.MimeMap[key]
	if !ok {
		return 0
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

// streamFinalize closes the in-progress builder into a size-prefixed,
// "SPDU"-tagged buffer and returns a copy of it; the caller (Flush) resets
// the builder. Returns nil if nothing was written since the last Flush or
// Truncate.
func (c *Codec) streamFinalize() []byte {
	if len(c.pdus) == 0 {
		return nil
	}

	pduschema.StreamStartPdusVector(c.builder, len(c.pdus))
	for i := len(c.pdus) - 1; i >= 0; i-- {
		c.builder.PrependUOffsetT(c.pdus[i])
	}
	pdusVec := c.builder.EndVector(len(c.pdus))

	pduschema.StreamStart(c.builder)
	pduschema.StreamAddPdus(c.builder, pdusVec)
	stream := pduschema.StreamEnd(c.builder)
	c.builder.FinishSizePrefixedWithFileIdentifier(stream, []byte(pduschema.FileIdentifier))

	buf := c.builder.FinishedBytes()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

// Flush finalizes any staged PDUs into Stream and starts a fresh builder.
func (c *Codec) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()

	buf := c.streamFinalize()
	c.builder = flatbuffers.NewBuilder(1024)
	c.pdus = nil
	if buf == nil {
		return
	}
	c.Stream = buf
}

func (c *Codec) pdusFromStream() ([]*pduschema.Pdu, error) {
	if len(c.Stream) == 0 {
		return nil, nil
	}
	if len(c.Stream) < 4 {
		metrics.IncMalformedBuffers()
		return nil, ncodecerr.NewDecodeError("stream shorter than size prefix (%d bytes)", len(c.Stream))
	}

	stream := pduschema.GetRootAsStream(c.Stream, 4)
	out := make([]*pduschema.Pdu, 0, stream.PdusLength())
	for i := 0; i < stream.PdusLength(); i++ {
		p := &pduschema.Pdu{}
		if !stream.Pdus(p, i) {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func decodeIPAddr(transport *pduschema.IpMessageMetadata) *IPAddr {
	var raw flatbuffers.Table
	if !transport.IpAddr(&raw) {
		return nil
	}
	switch transport.IpAddrType() {
	case pduschema.IpAddrV4:
		v4 := &pduschema.IpV4{}
		v4.Init(raw.Bytes, raw.Pos)
		return &IPAddr{V4: &IPv4Addr{SrcIP: v4.SrcAddr(), DstIP: v4.DstAddr()}}
	case pduschema.IpAddrV6:
		v6 := &pduschema.IpV6{}
		v6.Init(raw.Bytes, raw.Pos)
		var src, dst pduschema.IpAddressV6
		out := &IPv6Addr{}
		if s := v6.SrcAddr(&src); s != nil {
			out.SrcIP = [8]uint16{s.V0(), s.V1(), s.V2(), s.V3(), s.V4(), s.V5(), s.V6(), s.V7()}
		}
		if d := v6.DstAddr(&dst); d != nil {
			out.DstIP = [8]uint16{d.V0(), d.V1(), d.V2(), d.V3(), d.V4(), d.V5(), d.V6(), d.V7()}
		}
		return &IPAddr{V6: out}
	}
	return nil
}

func decodeSocketAdapter(transport *pduschema.IpMessageMetadata) *SocketAdapter {
	var raw flatbuffers.Table
	if !transport.Adapter(&raw) {
		return nil
	}
	switch transport.AdapterType() {
	case pduschema.SocketAdapterDoIp:
		a := &pduschema.DoIpMetadata{}
		a.Init(raw.Bytes, raw.Pos)
		return &SocketAdapter{DoIP: &DoIPAdapter{ProtocolVersion: a.ProtocolVersion(), PayloadType: a.PayloadType()}}
	case pduschema.SocketAdapterSomeIp:
		a := &pduschema.SomeIpMetadata{}
		a.Init(raw.Bytes, raw.Pos)
		return &SocketAdapter{SomeIP: &SomeIPAdapter{
			MessageID:        a.MessageId(),
			Length:           a.Length(),
			RequestID:        a.RequestId(),
			ProtocolVersion:  a.ProtocolVersion(),
			InterfaceVersion: a.InterfaceVersion(),
			MessageType:      a.MessageType(),
			ReturnCode:       a.ReturnCode(),
		}}
	}
	return nil
}

// decodeTransport resolves a Pdu's transport union into msg.Can or msg.IP.
// A transport tag the codec does not recognize is a no-op, same as the
// reference codec.
func decodeTransport(msg *PduMessage, p *pduschema.Pdu) {
	var raw flatbuffers.Table
	if !p.Transport(&raw) {
		return
	}
	switch p.TransportType() {
	case TransportCan:
		t := &pduschema.CanMessageMetadata{}
		t.Init(raw.Bytes, raw.Pos)
		msg.Can = &CanTransport{
			Format:      t.MessageFormat(),
			FrameType:   t.FrameType(),
			InterfaceID: t.InterfaceId(),
			NetworkID:   t.NetworkId(),
		}
	case TransportIP:
		t := &pduschema.IpMessageMetadata{}
		t.Init(raw.Bytes, raw.Pos)
		msg.IP = &IPTransport{
			EthDstMAC:    t.EthDstMac(),
			EthSrcMAC:    t.EthSrcMac(),
			EthEtherType: t.EthEthertype(),
			EthTciPCP:    t.EthTciPcp(),
			EthTciDEI:    t.EthTciDei(),
			EthTciVID:    t.EthTciVid(),
			IPProtocol:   t.IpProtocol(),
			IPAddrType:   t.IpAddrType(),
			IPAddr:       decodeIPAddr(t),
			IPSrcPort:    t.IpSrcPort(),
			IPDstPort:    t.IpDstPort(),
			AdapterType:  t.AdapterType(),
			Adapter:      decodeSocketAdapter(t),
		}
	}
}

// Read decodes Stream into messages, dropping any PDU whose SwcId matches
// the channel's swc_id (self-reception filter). An absent, zero or
// non-numeric swc_id disables the filter.
func (c *Codec) Read() ([]PduMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pdus, err := c.pdusFromStream()
	if err != nil {
		return nil, err
	}

	swcID := c.mimeMapUint32("swc_id")

	msgs := make([]PduMessage, 0, len(pdus))
	for _, p := range pdus {
		if swcID != 0 && p.SwcId() == swcID {
			metrics.IncPdusFiltered()
			continue
		}
		msg := PduMessage{
			ID:        p.Id(),
			Payload:   p.PayloadBytes(),
			SwcID:     p.SwcId(),
			EcuID:     p.EcuId(),
			Transport: p.TransportType(),
		}
		decodeTransport(&msg, p)
		if msg.Transport != TransportCan && msg.Transport != TransportIP {
			msg.Transport = TransportNone
		}
		msgs = append(msgs, msg)
		metrics.IncPdusDecoded()
	}
	logging.L().Debug("pdu_read", "pdus", len(pdus), "delivered", len(msgs))
	return msgs, nil
}

// Truncate discards Stream and any staged-but-unflushed PDUs.
func (c *Codec) Truncate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.builder = flatbuffers.NewBuilder(1024)
	c.pdus = nil
	c.Stream = nil
}

// Stat reads (and optionally sets) a MimeMap parameter. Setting a value
// that was not previously present still returns the new value; reading a
// parameter that was never set returns "".
func (c *Codec) Stat(param string, newValue ...string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(newValue) > 0 {
		if c.MimeMap == nil {
			c.MimeMap = make(map[string]string)
		}
		c.MimeMap[param] = newValue[0]
		return c.MimeMap[param]
	}
	if c.MimeMap == nil {
		return ""
	}
	return c.MimeMap[param]
}
