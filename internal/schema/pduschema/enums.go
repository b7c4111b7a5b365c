// Package pduschema holds hand-written flatc-style bindings for the PDU
// stream schema (AutomotiveBus.Stream.Pdu.*). Field numbers, vtable slot
// order and default values follow the existing wire schema bit-exact so
// that peers generated by flatc in other languages stay interoperable.
package pduschema

// TransportMetadata discriminates the transport subtree carried by a Pdu.
type TransportMetadata byte

const (
	TransportMetadataNONE TransportMetadata = iota
	TransportMetadataCan
	TransportMetadataIp
)

// CanFrameType mirrors the frame-type enumeration used inside CAN transport
// metadata (kept distinct from canschema.CanFrameType: they live in separate
// schema namespaces, AutomotiveBus.Stream.Frame vs AutomotiveBus.Stream.Pdu).
type CanFrameType byte

const (
	CanFrameTypeBase CanFrameType = iota
	CanFrameTypeExtended
	CanFrameTypeFdBase
	CanFrameTypeFdExtended
)

// CanMessageFormat distinguishes classic vs CAN FD framing for a PDU's CAN
// transport metadata.
type CanMessageFormat byte

const (
	CanMessageFormatBase CanMessageFormat = iota
	CanMessageFormatFd
)

// IpProtocol names the L4 protocol carrying a PDU over IP.
type IpProtocol byte

const (
	IpProtocolNone IpProtocol = iota
	IpProtocolTcp
	IpProtocolUdp
)

// IpAddr discriminates which branch of the tagged IP address union is set.
type IpAddr byte

const (
	IpAddrNONE IpAddr = iota
	IpAddrV4
	IpAddrV6
)

// SocketAdapter discriminates which socket-adapter payload is set.
type SocketAdapter byte

const (
	SocketAdapterNONE SocketAdapter = iota
	SocketAdapterDoIp
	SocketAdapterSomeIp
)
