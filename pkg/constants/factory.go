package constants

import (
	"github.com/google/uuid"

	"github.com/openxbox/smartglass-go/pkg/packet"
	"github.com/openxbox/smartglass-go/pkg/payload"
	"github.com/openxbox/smartglass-go/pkg/wire"
)

// PowerOnRequest builds a PowerOnRequest packet waking the console
// identified by liveID. It carries version 2 like every post-handshake
// packet; discovery is the only family that uses version 0.
func PowerOnRequest(liveID string) packet.Packet {
	return packet.PowerOnRequestPacket{
		Header:  packet.NewSimpleHeader(packet.PowerOnRequest, VersionConnected),
		Payload: payload.PowerOnRequestData{LiveID: liveID},
	}
}

// DiscoveryRequest builds the multicast probe sent before any session
// exists. clientType identifies the calling platform (e.g. 8 for Android).
func DiscoveryRequest(clientType uint16) packet.Packet {
	return packet.DiscoveryRequestPacket{
		Header: packet.NewSimpleHeader(packet.DiscoveryRequest, VersionDiscovery),
		Payload: payload.DiscoveryRequestData{
			Flags:      2,
			ClientType: clientType,
		},
	}
}

// ConnectRequest builds the client's handshake request: its ECDH public
// key and per-datagram IV in the unprotected half, and its Xbox Live
// credentials plus request-numbering window in the protected half. The
// caller must have already derived session keys (crypto.DeriveKeys against
// the shared secret from a crypto.KeyPair.ECDH with the console's known
// public key) and installed them on the session.State before encoding this
// packet, since its protected half is encrypted under those keys.
func ConnectRequest(sgUUID uuid.UUID, pub wire.PublicKey, iv [16]byte, userhash, jwt string, reqNum, groupStart, groupEnd uint32) packet.Packet {
	return packet.ConnectRequestPacket{
		Header: packet.NewSimpleHeader(packet.ConnectRequest, VersionConnected),
		Unprotected: payload.ConnectRequestUnprotectedData{
			SGUUID:    sgUUID,
			PublicKey: pub,
			IV:        iv,
		},
		Protected: payload.ConnectRequestProtectedData{
			Userhash:          userhash,
			JWT:               jwt,
			RequestNum:        reqNum,
			RequestGroupStart: groupStart,
			RequestGroupEnd:   groupEnd,
		},
	}
}
