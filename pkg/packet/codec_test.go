package packet

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/openxbox/smartglass-go/pkg/crypto"
	"github.com/openxbox/smartglass-go/pkg/payload"
	"github.com/openxbox/smartglass-go/pkg/session"
	"github.com/openxbox/smartglass-go/pkg/wire"
)

func fixedSecret() []byte {
	secret := make([]byte, crypto.SecretSize)
	for i := range secret {
		secret[i] = byte(i)
	}
	return secret
}

func fixedKeys(t *testing.T) crypto.Keys {
	t.Helper()
	keys, err := crypto.NewKeysFromSecret(fixedSecret())
	if err != nil {
		t.Fatalf("NewKeysFromSecret: %v", err)
	}
	return keys
}

// selfSignedCert builds a minimal self-signed P-256 certificate with the
// given common name, for exercising DiscoveryResponseData's embedded
// Certificate field without a binary fixture.
func selfSignedCert(t *testing.T, commonName string) []byte {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Unix(0, 0),
		NotAfter:     time.Unix(0, 0).Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &priv.PublicKey, priv)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	return der
}

func TestCodecDiscoveryRequestRoundTrip(t *testing.T) {
	state := session.NewDisconnected()
	codec := Codec{}

	pkt := DiscoveryRequestPacket{
		Header: NewSimpleHeader(DiscoveryRequest, 0),
		Payload: payload.DiscoveryRequestData{
			Flags:          2,
			ClientType:     8, // Android
			MinimumVersion: 0,
			MaximumVersion: 0,
		},
	}

	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) != 16 {
		t.Fatalf("expected 16-byte datagram (6-byte header + 10-byte payload), got %d", len(data))
	}

	decoded, err := codec.Decode(data, state)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	dr, ok := decoded.(DiscoveryRequestPacket)
	if !ok {
		t.Fatalf("decoded to %T, want DiscoveryRequestPacket", decoded)
	}
	if dr.Payload != pkt.Payload {
		t.Errorf("payload mismatch: got %+v, want %+v", dr.Payload, pkt.Payload)
	}

	reencoded, err := codec.Encode(dr, state)
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}
	if !bytes.Equal(data, reencoded) {
		t.Errorf("round trip not byte-identical: %x != %x", data, reencoded)
	}
}

func TestCodecDiscoveryResponseRoundTrip(t *testing.T) {
	state := session.NewDisconnected()
	codec := Codec{}

	der := selfSignedCert(t, "FFFFFFFFFFF")
	certBuf := wire.NewWriter()
	certBuf.U16(uint16(len(der)))
	certBuf.Bytes(der)
	cert, err := wire.DecodeCertificate(wire.NewReader(certBuf.Take()))
	if err != nil {
		t.Fatalf("DecodeCertificate: %v", err)
	}

	pkt := DiscoveryResponsePacket{
		Header: NewSimpleHeader(DiscoveryResponse, 2),
		Payload: payload.DiscoveryResponseData{
			Flags:       0,
			ClientType:  0,
			Name:        "XboxOne",
			UUID:        uuid.MustParse("DE305D54-75B4-431B-ADB2-EB6B9E546014"),
			Padding:     [5]byte{},
			Certificate: cert,
		},
	}

	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := codec.Decode(data, state)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	dr, ok := decoded.(DiscoveryResponsePacket)
	if !ok {
		t.Fatalf("decoded to %T, want DiscoveryResponsePacket", decoded)
	}
	if !reflect.DeepEqual(dr.Payload, pkt.Payload) {
		t.Errorf("payload mismatch:\ngot  %+v\nwant %+v", dr.Payload, pkt.Payload)
	}

	reencoded, err := codec.Encode(dr, state)
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}
	if !bytes.Equal(data, reencoded) {
		t.Error("round trip not byte-identical")
	}
}

func TestCodecConnectResponseRoundTrip(t *testing.T) {
	keys := fixedKeys(t)
	state := session.NewConnected(keys, session.Connected, session.Paired)
	codec := Codec{}

	var iv [16]byte
	for i := range iv {
		iv[i] = byte(i * 3)
	}

	pkt := ConnectResponsePacket{
		Header:      NewSimpleHeader(ConnectResponse, 2),
		Unprotected: payload.ConnectResponseUnprotectedData{IV: iv},
		Protected: payload.ConnectResponseProtectedData{
			ConnectRequest: 0,
			PairingState:   0,
			ParticipantID:  31,
		},
	}

	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) < crypto.SignatureSize {
		t.Fatalf("datagram too short to carry a trailer: %d bytes", len(data))
	}

	decoded, err := codec.Decode(data, state)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	cr, ok := decoded.(ConnectResponsePacket)
	if !ok {
		t.Fatalf("decoded to %T, want ConnectResponsePacket", decoded)
	}
	if cr.Unprotected != pkt.Unprotected {
		t.Errorf("unprotected mismatch: got %+v, want %+v", cr.Unprotected, pkt.Unprotected)
	}
	if cr.Protected != pkt.Protected {
		t.Errorf("protected mismatch: got %+v, want %+v", cr.Protected, pkt.Protected)
	}

	reencoded, err := codec.Encode(cr, state)
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}
	if !bytes.Equal(data, reencoded) {
		t.Error("round trip not byte-identical")
	}
}

func TestCodecConnectResponseTamperedSignatureRejected(t *testing.T) {
	keys := fixedKeys(t)
	state := session.NewConnected(keys, session.Connected, session.Paired)
	codec := Codec{}

	pkt := ConnectResponsePacket{
		Header:      NewSimpleHeader(ConnectResponse, 2),
		Unprotected: payload.ConnectResponseUnprotectedData{IV: [16]byte{1, 2, 3}},
		Protected:   payload.ConnectResponseProtectedData{ParticipantID: 1},
	}
	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data[len(data)-1] ^= 0xFF
	if _, err := codec.Decode(data, state); err != ErrSignatureInvalid {
		t.Errorf("Decode of tampered trailer = %v, want ErrSignatureInvalid", err)
	}
}

func TestCodecConnectResponseTamperedBodyRejected(t *testing.T) {
	keys := fixedKeys(t)
	state := session.NewConnected(keys, session.Connected, session.Paired)
	codec := Codec{}

	pkt := ConnectResponsePacket{
		Header:      NewSimpleHeader(ConnectResponse, 2),
		Unprotected: payload.ConnectResponseUnprotectedData{IV: [16]byte{1, 2, 3}},
		Protected:   payload.ConnectResponseProtectedData{ParticipantID: 1},
	}
	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	data[0] ^= 0xFF
	if _, err := codec.Decode(data, state); err != ErrSignatureInvalid {
		t.Errorf("Decode of tampered body = %v, want ErrSignatureInvalid", err)
	}
}

func TestCodecAcknowledgeMessageRoundTrip(t *testing.T) {
	keys := fixedKeys(t)
	state := session.NewConnected(keys, session.Connected, session.Paired)
	codec := Codec{}

	pkt := MessagePacket{
		Header: MessageHeader{
			Sequence:  1,
			Target:    31,
			Source:    0,
			Flags:     PackMessageFlags(MsgAcknowledge, false, false, 2),
			ChannelID: 0x1000000000000000,
		},
		Body: Acknowledge{payload.AcknowledgeData{
			LowWatermark:  0,
			ProcessedList: []uint32{1},
			RejectedList:  []uint32{},
		}},
	}

	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := codec.Decode(data, state)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	msg, ok := decoded.(MessagePacket)
	if !ok {
		t.Fatalf("decoded to %T, want MessagePacket", decoded)
	}
	if msg.Header.Sequence != 1 || msg.Header.Target != 31 || msg.Header.ChannelID != 0x1000000000000000 {
		t.Errorf("header mismatch: %+v", msg.Header)
	}
	if msg.Header.MsgKind() != MsgAcknowledge {
		t.Errorf("MsgKind() = %v, want MsgAcknowledge", msg.Header.MsgKind())
	}
	ack, ok := msg.Body.(Acknowledge)
	if !ok {
		t.Fatalf("body decoded to %T, want Acknowledge", msg.Body)
	}
	if ack.LowWatermark != 0 || len(ack.ProcessedList) != 1 || ack.ProcessedList[0] != 1 || len(ack.RejectedList) != 0 {
		t.Errorf("body mismatch: %+v", ack)
	}

	reencoded, err := codec.Encode(msg, state)
	if err != nil {
		t.Fatalf("re-Encode: %v", err)
	}
	if !bytes.Equal(data, reencoded) {
		t.Error("round trip not byte-identical")
	}
}

func TestCodecMessageSingleBitFlipRejected(t *testing.T) {
	keys := fixedKeys(t)
	state := session.NewConnected(keys, session.Connected, session.Paired)
	codec := Codec{}

	pkt := MessagePacket{
		Header: MessageHeader{
			Sequence:  1,
			Target:    31,
			Flags:     PackMessageFlags(MsgAcknowledge, false, false, 2),
			ChannelID: 0x1000000000000000,
		},
		Body: Acknowledge{payload.AcknowledgeData{ProcessedList: []uint32{1}, RejectedList: []uint32{}}},
	}
	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	for _, byteIdx := range []int{0, len(data) / 2, len(data) - 1} {
		tampered := append([]byte(nil), data...)
		tampered[byteIdx] ^= 0x01
		if _, err := codec.Decode(tampered, state); err != ErrSignatureInvalid {
			t.Errorf("flip byte %d: Decode = %v, want ErrSignatureInvalid", byteIdx, err)
		}
	}

	if _, err := codec.Decode(data, state); err != nil {
		t.Errorf("untampered Decode failed: %v", err)
	}
}

func TestCodecRejectsPreConnectKindsWhileConnected(t *testing.T) {
	keys := fixedKeys(t)
	state := session.NewConnected(keys, session.Connected, session.Paired)
	codec := Codec{}

	w := wire.NewWriter()
	NewSimpleHeader(DiscoveryRequest, 0).Encode(w)
	payload.DiscoveryRequestData{}.Encode(w)

	if _, err := codec.Decode(w.Take(), state); err != session.ErrAlreadyConnected {
		t.Errorf("Decode while Connected = %v, want ErrAlreadyConnected", err)
	}
}

func TestCodecRejectsConnectedKindsWhileDisconnected(t *testing.T) {
	state := session.NewDisconnected()
	codec := Codec{}

	w := wire.NewWriter()
	w.U16(uint16(ConnectResponse))
	w.Bytes(make([]byte, 40))
	if _, err := codec.Decode(w.Take(), state); err != session.ErrNotConnected {
		t.Errorf("Decode while Disconnected = %v, want ErrNotConnected", err)
	}
}

func TestCodecConnectRequestDecodeNotImplemented(t *testing.T) {
	state := session.NewDisconnected()
	codec := Codec{}

	w := wire.NewWriter()
	NewSimpleHeader(ConnectRequest, 2).Encode(w)
	if _, err := codec.Decode(w.Take(), state); err != ErrNotImplemented {
		t.Errorf("Decode(ConnectRequest) = %v, want ErrNotImplemented", err)
	}
}

func TestCodecConnectRequestEncode(t *testing.T) {
	keys := fixedKeys(t)
	state := session.NewConnected(keys, session.Connected, session.Paired)
	codec := Codec{}

	pkt := ConnectRequestPacket{
		Header: NewSimpleHeader(ConnectRequest, 2),
		Unprotected: payload.ConnectRequestUnprotectedData{
			SGUUID:    uuid.New(),
			PublicKey: wire.PublicKey{KeyType: 4},
			IV:        [16]byte{9, 8, 7},
		},
		Protected: payload.ConnectRequestProtectedData{
			Userhash:          "user",
			JWT:               "token",
			RequestNum:        1,
			RequestGroupStart: 0,
			RequestGroupEnd:   2,
		},
	}

	data, err := codec.Encode(pkt, state)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// No trailing HMAC on ConnectRequest (only ConnectResponse/Message carry one).
	r := wire.NewReader(data)
	header, err := DecodeSimpleHeader(r)
	if err != nil {
		t.Fatalf("DecodeSimpleHeader: %v", err)
	}
	if header.Kind != ConnectRequest {
		t.Errorf("Kind = %v, want ConnectRequest", header.Kind)
	}
	wantLen := header.Size() + int(header.UnprotectedLen) + int(crypto.AlignedLen(int(header.ProtectedLen)))
	if len(data) != wantLen {
		t.Errorf("datagram length = %d, want %d (no HMAC trailer)", len(data), wantLen)
	}
}

func TestAlignedLenAlwaysMultipleOf16(t *testing.T) {
	for n := 0; n < 64; n++ {
		got := crypto.AlignedLen(n)
		if got%16 != 0 {
			t.Errorf("AlignedLen(%d) = %d not a multiple of 16", n, got)
		}
		if got != n && got != n+(16-n%16) {
			t.Errorf("AlignedLen(%d) = %d out of expected {n, n+(16-n%%16)} range", n, got)
		}
	}
}
