package packet

import "errors"

// Framing codec errors. Decode and Encode wrap these with fmt.Errorf's
// %w verb so callers can still use errors.Is against the sentinels below,
// session.ErrAlreadyConnected/ErrNotConnected, and the wire package's own
// primitive decoding errors.
var (
	// ErrTruncated is returned when a datagram is too short to hold a
	// declared header or region.
	ErrTruncated = errors.New("packet: truncated datagram")

	// ErrUnknownPacketKind is returned when the leading u16 does not match
	// any defined PacketKind.
	ErrUnknownPacketKind = errors.New("packet: unknown packet kind")

	// ErrUnknownMessageKind is returned in strict mode when a Message's
	// flags.msg_kind does not match any defined MessageKind.
	ErrUnknownMessageKind = errors.New("packet: unknown message kind")

	// ErrSignatureInvalid is returned when a datagram's trailing HMAC does
	// not verify against the session's HMAC key.
	ErrSignatureInvalid = errors.New("packet: signature invalid")

	// ErrDecryptFailed is returned when the AES-CBC protected region fails
	// to decrypt (bad padding, misaligned ciphertext).
	ErrDecryptFailed = errors.New("packet: decrypt failed")

	// ErrEncryptFailed is returned when encrypting a protected region
	// fails.
	ErrEncryptFailed = errors.New("packet: encrypt failed")

	// ErrIVGeneration is returned when deriving a Message packet's
	// per-datagram IV fails.
	ErrIVGeneration = errors.New("packet: iv generation failed")

	// ErrNotImplemented is returned for packet kinds this client-role
	// codec cannot decode. ConnectRequest is the only one: decoding it
	// would mean acting as the console (server role), which is out of
	// scope.
	ErrNotImplemented = errors.New("packet: not implemented")
)
