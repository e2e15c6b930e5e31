package packet

import (
	"fmt"

	"github.com/openxbox/smartglass-go/pkg/wire"
)

// SimpleHeader is the header shape for PowerOnRequest, DiscoveryRequest,
// DiscoveryResponse, ConnectRequest, and ConnectResponse. Its
// protected_payload_length field is only present on the wire for the two
// kinds with a protected region (PacketKind.HasProtectedRegion).
type SimpleHeader struct {
	Kind           PacketKind
	UnprotectedLen uint16
	ProtectedLen   uint16
	Version        uint16
}

// NewSimpleHeader returns a header for kind with both length fields zero,
// ready for a factory helper to fill in and the codec to patch once the
// payload(s) have been serialized.
func NewSimpleHeader(kind PacketKind, version uint16) SimpleHeader {
	return SimpleHeader{Kind: kind, Version: version}
}

// Size returns the encoded size of the header: 8 bytes when it carries a
// protected_payload_length field, 6 otherwise.
func (h SimpleHeader) Size() int {
	if h.Kind.HasProtectedRegion() {
		return 8
	}
	return 6
}

// DecodeSimpleHeader reads a SimpleHeader from r, including its
// conditional protected_payload_length field.
func DecodeSimpleHeader(r *wire.Reader) (SimpleHeader, error) {
	kindU16, err := r.U16()
	if err != nil {
		return SimpleHeader{}, err
	}
	kind := PacketKind(kindU16)

	unprotectedLen, err := r.U16()
	if err != nil {
		return SimpleHeader{}, err
	}

	var protectedLen uint16
	if kind.HasProtectedRegion() {
		if protectedLen, err = r.U16(); err != nil {
			return SimpleHeader{}, err
		}
	}

	version, err := r.U16()
	if err != nil {
		return SimpleHeader{}, err
	}

	return SimpleHeader{
		Kind:           kind,
		UnprotectedLen: unprotectedLen,
		ProtectedLen:   protectedLen,
		Version:        version,
	}, nil
}

// Encode appends the header's wire representation to w.
func (h SimpleHeader) Encode(w *wire.Writer) {
	w.U16(uint16(h.Kind))
	w.U16(h.UnprotectedLen)
	if h.Kind.HasProtectedRegion() {
		w.U16(h.ProtectedLen)
	}
	w.U16(h.Version)
}

// Bytes serializes the header on its own, for callers that need its exact
// byte length before assembling the rest of a datagram.
func (h SimpleHeader) Bytes() []byte {
	w := wire.NewWriter()
	h.Encode(w)
	return w.Take()
}

// MessageHeaderSize is the fixed encoded size of a MessageHeader.
const MessageHeaderSize = 26

// MessageHeader is the 26-byte header carried by every Message packet.
//
// Flags is kept as the raw wire uint16 rather than decomposed fields: bit
// 14 is used both as is_fragment and as the low bit of the 2-bit version
// field, an overlapping range present in the source protocol. Decoding
// and re-encoding the same raw value guarantees round-trip fidelity
// without attempting to resolve the overlap; MsgKind/NeedAck/IsFragment/
// Version mask and shift on read. Headers built in code rather than
// decoded use PackMessageFlags to synthesize Flags directly.
type MessageHeader struct {
	ProtectedLen uint16
	Sequence     uint32
	Target       uint32
	Source       uint32
	Flags        uint16
	ChannelID    uint64
}

// MsgKind extracts the message kind from bits 0-11 of Flags.
func (h MessageHeader) MsgKind() MessageKind {
	return MessageKind(h.Flags & 0x0FFF)
}

// NeedAck extracts the need-ack flag from bit 13 of Flags.
func (h MessageHeader) NeedAck() bool {
	return h.Flags&(1<<13) != 0
}

// IsFragment extracts the is-fragment flag from bit 14 of Flags. Bit 14 is
// shared with the low bit of Version; see the MessageHeader doc comment.
func (h MessageHeader) IsFragment() bool {
	return h.Flags&(1<<14) != 0
}

// Version extracts the 2-bit version field from bits 14-15 of Flags.
func (h MessageHeader) Version() uint16 {
	return (h.Flags >> 14) & 0x3
}

// PackMessageFlags synthesizes a fresh Flags value for a header built in
// code rather than decoded off the wire. isFragment and the low
// bit of version both land on bit 14, mirroring the protocol's own
// overlapping layout; this function does not attempt to reconcile a
// conflict between the two, it simply ORs both contributions in.
func PackMessageFlags(kind MessageKind, needAck, isFragment bool, version uint16) uint16 {
	flags := uint16(kind) & 0x0FFF
	if needAck {
		flags |= 1 << 13
	}
	if isFragment {
		flags |= 1 << 14
	}
	flags |= (version & 0x3) << 14
	return flags
}

// DecodeMessageHeader reads a 26-byte MessageHeader from r. The leading
// packet kind field is consumed and validated but not stored: a
// MessageHeader is only ever reached after the caller has already peeked
// PacketKind.Message.
func DecodeMessageHeader(r *wire.Reader) (MessageHeader, error) {
	kindU16, err := r.U16()
	if err != nil {
		return MessageHeader{}, err
	}
	if PacketKind(kindU16) != Message {
		return MessageHeader{}, fmt.Errorf("%w: %#04x", ErrUnknownPacketKind, kindU16)
	}

	var h MessageHeader
	if h.ProtectedLen, err = r.U16(); err != nil {
		return MessageHeader{}, err
	}
	if h.Sequence, err = r.U32(); err != nil {
		return MessageHeader{}, err
	}
	if h.Target, err = r.U32(); err != nil {
		return MessageHeader{}, err
	}
	if h.Source, err = r.U32(); err != nil {
		return MessageHeader{}, err
	}
	if h.Flags, err = r.U16(); err != nil {
		return MessageHeader{}, err
	}
	if h.ChannelID, err = r.U64(); err != nil {
		return MessageHeader{}, err
	}
	return h, nil
}

// Encode appends the header's 26-byte wire representation to w.
func (h MessageHeader) Encode(w *wire.Writer) {
	w.U16(uint16(Message))
	w.U16(h.ProtectedLen)
	w.U32(h.Sequence)
	w.U32(h.Target)
	w.U32(h.Source)
	w.U16(h.Flags)
	w.U64(h.ChannelID)
}

// Bytes serializes the header on its own.
func (h MessageHeader) Bytes() []byte {
	w := wire.NewWriter()
	h.Encode(w)
	return w.Take()
}
