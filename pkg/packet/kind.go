package packet

// PacketKind identifies which of the six top-level packet shapes a
// datagram carries. It is always the first u16 on the wire.
type PacketKind uint16

const (
	ConnectRequest    PacketKind = 0xCC00
	ConnectResponse   PacketKind = 0xCC01
	DiscoveryRequest  PacketKind = 0xDD00
	DiscoveryResponse PacketKind = 0xDD01
	PowerOnRequest    PacketKind = 0xDD02
	Message           PacketKind = 0xD00D
)

// String returns the kind's name, or "Unknown" for a value that does not
// correspond to any defined kind.
func (k PacketKind) String() string {
	switch k {
	case ConnectRequest:
		return "ConnectRequest"
	case ConnectResponse:
		return "ConnectResponse"
	case DiscoveryRequest:
		return "DiscoveryRequest"
	case DiscoveryResponse:
		return "DiscoveryResponse"
	case PowerOnRequest:
		return "PowerOnRequest"
	case Message:
		return "Message"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k is one of the six defined packet kinds.
func (k PacketKind) IsValid() bool {
	switch k {
	case ConnectRequest, ConnectResponse, DiscoveryRequest, DiscoveryResponse, PowerOnRequest, Message:
		return true
	default:
		return false
	}
}

// HasProtectedRegion reports whether a SimpleHeader for this kind carries
// a protected_payload_length field. Only ConnectRequest and
// ConnectResponse have a protected (encrypted) half.
func (k PacketKind) HasProtectedRegion() bool {
	return k == ConnectRequest || k == ConnectResponse
}
