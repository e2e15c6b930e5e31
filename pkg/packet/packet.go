package packet

import "github.com/openxbox/smartglass-go/pkg/payload"

// Packet is the sum type over the six datagram shapes the codec knows
// how to encode and decode. Each concrete type below reports the
// PacketKind it was decoded from or should be encoded as; Decode always
// returns one of these, and Encode accepts any of them.
type Packet interface {
	Kind() PacketKind
}

// PowerOnRequestPacket wakes a console by its Xbox Live ID. Legal only
// while Disconnected.
type PowerOnRequestPacket struct {
	Header  SimpleHeader
	Payload payload.PowerOnRequestData
}

func (PowerOnRequestPacket) Kind() PacketKind { return PowerOnRequest }

// DiscoveryRequestPacket is the multicast probe sent before any session
// exists. Legal only while Disconnected.
type DiscoveryRequestPacket struct {
	Header  SimpleHeader
	Payload payload.DiscoveryRequestData
}

func (DiscoveryRequestPacket) Kind() PacketKind { return DiscoveryRequest }

// DiscoveryResponsePacket answers a DiscoveryRequestPacket, advertising
// the console's identity and certificate. Legal only while Disconnected.
type DiscoveryResponsePacket struct {
	Header  SimpleHeader
	Payload payload.DiscoveryResponseData
}

func (DiscoveryResponsePacket) Kind() PacketKind { return DiscoveryResponse }

// ConnectRequestPacket carries the client's ECDH public key and
// credentials. This codec never decodes one (ErrNotImplemented — that
// would be the console/server role; Decode checks for Disconnected
// first). Encoding one requires Connected state, because its protected
// half is encrypted under the session keys.
type ConnectRequestPacket struct {
	Header      SimpleHeader
	Unprotected payload.ConnectRequestUnprotectedData
	Protected   payload.ConnectRequestProtectedData
}

func (ConnectRequestPacket) Kind() PacketKind { return ConnectRequest }

// ConnectResponsePacket answers a ConnectRequestPacket once the session
// has moved to Connected (keys installed from the ECDH agreement). Its
// protected half is AES-CBC encrypted and the whole datagram carries a
// trailing HMAC.
type ConnectResponsePacket struct {
	Header      SimpleHeader
	Unprotected payload.ConnectResponseUnprotectedData
	Protected   payload.ConnectResponseProtectedData
}

func (ConnectResponsePacket) Kind() PacketKind { return ConnectResponse }

// MessagePacket is every post-handshake datagram: a 26-byte MessageHeader
// followed by an encrypted MessageBody and a trailing HMAC. Legal only
// while Connected.
type MessagePacket struct {
	Header MessageHeader
	Body   MessageBody
}

func (MessagePacket) Kind() PacketKind { return Message }
