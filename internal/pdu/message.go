// Package pdu implements the PDU codec: PduMessage plus a Codec providing
// Write/Flush/Read/Truncate/Stat over a length-prefixed, "SPDU"-tagged
// flatbuffers stream (internal/schema/pduschema).
package pdu

import "github.com/kstaniek/ncodec/internal/schema/pduschema"

// TransportKind discriminates which transport metadata (if any) a PduMessage
// carries. It mirrors pduschema.TransportMetadata at the domain-model level.
type TransportKind = pduschema.TransportMetadata

const (
	TransportNone = pduschema.TransportMetadataNONE
	TransportCan  = pduschema.TransportMetadataCan
	TransportIP   = pduschema.TransportMetadataIp
)

// CanFrameType mirrors the frame-type enumeration carried by CAN transport
// metadata.
type CanFrameType = pduschema.CanFrameType

const (
	CanFrameTypeBase       = pduschema.CanFrameTypeBase
	CanFrameTypeExtended   = pduschema.CanFrameTypeExtended
	CanFrameTypeFdBase     = pduschema.CanFrameTypeFdBase
	CanFrameTypeFdExtended = pduschema.CanFrameTypeFdExtended
)

// CanMessageFormat distinguishes classic vs CAN FD framing.
type CanMessageFormat = pduschema.CanMessageFormat

const (
	CanMessageFormatBase = pduschema.CanMessageFormatBase
	CanMessageFormatFd   = pduschema.CanMessageFormatFd
)

// IPProtocol names the L4 protocol carrying a PDU over IP.
type IPProtocol = pduschema.IpProtocol

const (
	IPProtocolNone = pduschema.IpProtocolNone
	IPProtocolTCP  = pduschema.IpProtocolTcp
	IPProtocolUDP  = pduschema.IpProtocolUdp
)

// SocketAdapterKind discriminates which socket-adapter payload an
// IPTransport carries.
type SocketAdapterKind = pduschema.SocketAdapter

const (
	SocketAdapterNone   = pduschema.SocketAdapterNONE
	SocketAdapterDoIP   = pduschema.SocketAdapterDoIp
	SocketAdapterSomeIP = pduschema.SocketAdapterSomeIp
)

// CanTransport is a PduMessage's transport metadata when Transport ==
// TransportCan.
type CanTransport struct {
	Format      CanMessageFormat
	FrameType   CanFrameType
	InterfaceID uint32
	NetworkID   uint32
}

// IPv4Addr is a tagged IPAddr variant: 32-bit source/destination pair.
type IPv4Addr struct {
	SrcIP uint32
	DstIP uint32
}

// IPv6Addr is a tagged IPAddr variant: 8-word source/destination pair.
type IPv6Addr struct {
	SrcIP [8]uint16
	DstIP [8]uint16
}

// IPAddr is a tagged union: exactly one of V4/V6 is non-nil, or both nil
// when the PDU carries no address (IpAddrType == NONE).
type IPAddr struct {
	V4 *IPv4Addr
	V6 *IPv6Addr
}

// DoIPAdapter is the socket-adapter payload when SocketAdapter == DoIP.
type DoIPAdapter struct {
	ProtocolVersion uint8
	PayloadType     uint16
}

// SomeIPAdapter is the socket-adapter payload when SocketAdapter == SomeIP.
type SomeIPAdapter struct {
	MessageID        uint32
	Length           uint32
	RequestID        uint32
	ProtocolVersion  uint8
	InterfaceVersion uint8
	MessageType      uint8
	ReturnCode       uint8
}

// SocketAdapter is a tagged union: exactly one of DoIP/SomeIP is non-nil, or
// both nil when AdapterType == NONE.
type SocketAdapter struct {
	DoIP   *DoIPAdapter
	SomeIP *SomeIPAdapter
}

// IPTransport is a PduMessage's transport metadata when Transport ==
// TransportIP. IPAddr and Adapter are themselves nested tagged unions.
type IPTransport struct {
	EthDstMAC    uint64
	EthSrcMAC    uint64
	EthEtherType uint16
	EthTciPCP    uint8
	EthTciDEI    uint8
	EthTciVID    uint16
	IPProtocol   IPProtocol
	IPAddrType   pduschema.IpAddr
	IPAddr       *IPAddr
	IPSrcPort    uint16
	IPDstPort    uint16
	AdapterType  SocketAdapterKind
	Adapter      *SocketAdapter
}

// PduMessage is one protocol data unit as exchanged with a codec caller.
// SwcId/EcuId of 0 mean "inherit from the channel's MimeMap" on Write; see
// Codec.Write.
type PduMessage struct {
	ID        uint32
	Payload   []byte
	Transport TransportKind
	SwcID     uint32
	EcuID     uint32
	Can       *CanTransport
	IP        *IPTransport
}
