package packet

import (
	"encoding/binary"
	"fmt"

	"github.com/openxbox/smartglass-go/pkg/crypto"
	"github.com/openxbox/smartglass-go/pkg/payload"
	"github.com/openxbox/smartglass-go/pkg/session"
	"github.com/openxbox/smartglass-go/pkg/wire"
)

// Codec encodes and decodes SmartGlass datagrams against a session.State.
// The zero value is strict: an unrecognized Message kind produces
// ErrUnknownMessageKind. Set Lenient to map it to MessageNull instead, for
// forward compatibility with kinds a future console firmware might add.
type Codec struct {
	Lenient bool
}

// Decode parses a raw datagram into a Packet, consulting and gating on
// state as described by each packet kind's connection-state requirement.
// state is read but never mutated.
func (c Codec) Decode(data []byte, state *session.State) (Packet, error) {
	if len(data) < 2 {
		return nil, ErrTruncated
	}
	kind := PacketKind(binary.BigEndian.Uint16(data[:2]))

	switch kind {
	case PowerOnRequest, DiscoveryRequest, DiscoveryResponse, ConnectRequest:
		if err := state.RequireDisconnected(); err != nil {
			return nil, err
		}
		return decodeSimple(data, kind)
	case ConnectResponse:
		keys, _, _, err := state.RequireConnected()
		if err != nil {
			return nil, err
		}
		if err := verifyMAC(keys.HMAC[:], data); err != nil {
			return nil, err
		}
		return decodeConnectResponse(data, keys)
	case Message:
		keys, _, _, err := state.RequireConnected()
		if err != nil {
			return nil, err
		}
		if err := verifyMAC(keys.HMAC[:], data); err != nil {
			return nil, err
		}
		return decodeMessage(data, keys, c.Lenient)
	default:
		// While Connected every accepted datagram is signed, so a kind
		// that no longer parses because its bytes were altered is
		// reported as a bad signature rather than as an unknown kind.
		if keys, _, _, err := state.RequireConnected(); err == nil {
			if verifyMAC(keys.HMAC[:], data) == ErrSignatureInvalid {
				return nil, ErrSignatureInvalid
			}
		}
		return nil, fmt.Errorf("%w: %#04x", ErrUnknownPacketKind, uint16(kind))
	}
}

// Encode serializes p, consulting and gating on state for the packet
// kinds that need session key material (ConnectRequest, ConnectResponse,
// Message).
func (c Codec) Encode(p Packet, state *session.State) ([]byte, error) {
	switch pkt := p.(type) {
	case PowerOnRequestPacket:
		return encodeUnprotected(pkt.Header, pkt.Payload.Encode), nil
	case DiscoveryRequestPacket:
		return encodeUnprotected(pkt.Header, pkt.Payload.Encode), nil
	case DiscoveryResponsePacket:
		return encodeUnprotected(pkt.Header, pkt.Payload.Encode), nil
	case ConnectRequestPacket:
		keys, _, _, err := state.RequireConnected()
		if err != nil {
			return nil, err
		}
		return encodeConnectRequest(pkt, keys)
	case ConnectResponsePacket:
		keys, _, _, err := state.RequireConnected()
		if err != nil {
			return nil, err
		}
		return encodeConnectResponse(pkt, keys)
	case MessagePacket:
		keys, _, _, err := state.RequireConnected()
		if err != nil {
			return nil, err
		}
		return encodeMessage(pkt, keys)
	default:
		return nil, fmt.Errorf("packet: unsupported packet type %T", p)
	}
}

func verifyMAC(hmacKey, data []byte) error {
	if len(data) < crypto.SignatureSize {
		return ErrTruncated
	}
	split := len(data) - crypto.SignatureSize
	if err := crypto.Verify(hmacKey, data[:split], data[split:]); err != nil {
		return ErrSignatureInvalid
	}
	return nil
}

func decodeSimple(data []byte, kind PacketKind) (Packet, error) {
	r := wire.NewReader(data)
	header, err := DecodeSimpleHeader(r)
	if err != nil {
		return nil, err
	}

	switch kind {
	case PowerOnRequest:
		d, err := payload.DecodePowerOnRequestData(r)
		if err != nil {
			return nil, err
		}
		return PowerOnRequestPacket{Header: header, Payload: d}, nil
	case DiscoveryRequest:
		d, err := payload.DecodeDiscoveryRequestData(r)
		if err != nil {
			return nil, err
		}
		return DiscoveryRequestPacket{Header: header, Payload: d}, nil
	case DiscoveryResponse:
		d, err := payload.DecodeDiscoveryResponseData(r)
		if err != nil {
			return nil, err
		}
		return DiscoveryResponsePacket{Header: header, Payload: d}, nil
	case ConnectRequest:
		// Decoding a ConnectRequest is the console's job, not this
		// client-role codec's; see §1's server-role non-goal.
		return nil, ErrNotImplemented
	default:
		return nil, fmt.Errorf("%w: %#04x", ErrUnknownPacketKind, uint16(kind))
	}
}

func decodeConnectResponse(data []byte, keys crypto.Keys) (Packet, error) {
	r := wire.NewReader(data[:len(data)-crypto.SignatureSize])
	header, err := DecodeSimpleHeader(r)
	if err != nil {
		return nil, err
	}
	unprotected, err := payload.DecodeConnectResponseUnprotectedData(r)
	if err != nil {
		return nil, err
	}

	plaintext, err := crypto.Decrypt(keys.AES, unprotected.IV, r.Rest(), int(header.ProtectedLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	protected, err := payload.DecodeConnectResponseProtectedData(wire.NewReader(plaintext))
	if err != nil {
		return nil, err
	}

	return ConnectResponsePacket{Header: header, Unprotected: unprotected, Protected: protected}, nil
}

func decodeMessage(data []byte, keys crypto.Keys, lenient bool) (Packet, error) {
	body := data[:len(data)-crypto.SignatureSize]
	if len(body) < MessageHeaderSize {
		return nil, ErrTruncated
	}

	var first16 [16]byte
	copy(first16[:], body[:16])

	r := wire.NewReader(body)
	header, err := DecodeMessageHeader(r)
	if err != nil {
		return nil, err
	}

	iv, err := crypto.GenerateIV(keys.IV, first16)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIVGeneration, err)
	}

	plaintext, err := crypto.Decrypt(keys.AES, iv, r.Rest(), int(header.ProtectedLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptFailed, err)
	}

	msgBody, err := decodeMessageBody(header.MsgKind(), lenient, plaintext)
	if err != nil {
		return nil, err
	}

	return MessagePacket{Header: header, Body: msgBody}, nil
}

// encodeUnprotected serializes an unprotected simple packet: write the
// payload first to learn its length, then the header with that length
// patched in, then concatenate.
func encodeUnprotected(header SimpleHeader, encodePayload func(*wire.Writer)) []byte {
	pw := wire.NewWriter()
	encodePayload(pw)
	payloadBytes := pw.Take()

	header.UnprotectedLen = uint16(len(payloadBytes))
	return append(header.Bytes(), payloadBytes...)
}

func encodeConnectRequest(pkt ConnectRequestPacket, keys crypto.Keys) ([]byte, error) {
	uw := wire.NewWriter()
	pkt.Unprotected.Encode(uw)
	unprotectedBytes := uw.Take()

	pw := wire.NewWriter()
	pkt.Protected.Encode(pw)
	plaintext := pw.Take()

	ciphertext, err := crypto.Encrypt(keys.AES, pkt.Unprotected.IV, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptFailed, err)
	}

	header := pkt.Header
	header.UnprotectedLen = uint16(len(unprotectedBytes))
	header.ProtectedLen = uint16(len(plaintext))

	out := header.Bytes()
	out = append(out, unprotectedBytes...)
	out = append(out, ciphertext...)
	// I2 scopes the trailing HMAC to ConnectResponse and Message only;
	// ConnectRequest carries no signature.
	return out, nil
}

func encodeConnectResponse(pkt ConnectResponsePacket, keys crypto.Keys) ([]byte, error) {
	uw := wire.NewWriter()
	pkt.Unprotected.Encode(uw)
	unprotectedBytes := uw.Take()

	pw := wire.NewWriter()
	pkt.Protected.Encode(pw)
	plaintext := pw.Take()

	ciphertext, err := crypto.Encrypt(keys.AES, pkt.Unprotected.IV, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptFailed, err)
	}

	header := pkt.Header
	header.UnprotectedLen = uint16(len(unprotectedBytes))
	header.ProtectedLen = uint16(len(plaintext))

	body := header.Bytes()
	body = append(body, unprotectedBytes...)
	body = append(body, ciphertext...)

	mac := crypto.Sign(keys.HMAC[:], body)
	return append(body, mac[:]...), nil
}

func encodeMessage(pkt MessagePacket, keys crypto.Keys) ([]byte, error) {
	bw := wire.NewWriter()
	encodeMessageBody(bw, pkt.Body)
	plaintext := bw.Take()

	header := pkt.Header
	header.ProtectedLen = uint16(len(plaintext))
	headerBytes := header.Bytes()

	var first16 [16]byte
	copy(first16[:], headerBytes[:16])
	iv, err := crypto.GenerateIV(keys.IV, first16)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIVGeneration, err)
	}

	ciphertext, err := crypto.Encrypt(keys.AES, iv, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptFailed, err)
	}

	body := append(headerBytes, ciphertext...)
	mac := crypto.Sign(keys.HMAC[:], body)
	return append(body, mac[:]...), nil
}
