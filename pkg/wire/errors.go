package wire

import "errors"

// Wire primitive decoding errors.
var (
	// ErrTruncated is returned when fewer bytes remain than a primitive
	// needs to decode.
	ErrTruncated = errors.New("wire: truncated input")

	// ErrInvalidTerminator is returned when an SGString's trailing byte
	// is not 0x00.
	ErrInvalidTerminator = errors.New("wire: sgstring terminator is not zero")

	// ErrArrayTooLong is returned when a DynArray's declared count would
	// require more bytes than remain in the input, guarding against a
	// hostile or corrupt length prefix forcing a huge allocation.
	ErrArrayTooLong = errors.New("wire: array count exceeds remaining input")

	// ErrInvalidUUID is returned when a UUID<text> field fails to parse
	// as a hyphenated UUID string.
	ErrInvalidUUID = errors.New("wire: invalid uuid text")

	// ErrInvalidCertificate is returned when a Certificate's DER payload
	// fails to parse or does not carry a P-256 public key.
	ErrInvalidCertificate = errors.New("wire: invalid certificate")
)
