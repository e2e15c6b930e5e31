package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
)

// SignatureSize is the length in bytes of the datagram trailer produced by
// Sign and checked by Verify.
const SignatureSize = 32

// Sign computes the HMAC-SHA256 tag over data using the session HMAC key.
// This is appended as the last SignatureSize bytes of ConnectResponse and
// Message datagrams.
func Sign(hmacKey, data []byte) [SignatureSize]byte {
	h := hmac.New(sha256.New, hmacKey)
	h.Write(data)
	var tag [SignatureSize]byte
	copy(tag[:], h.Sum(nil))
	return tag
}

// Verify recomputes the HMAC-SHA256 tag over data and compares it against
// wantTag in constant time. It returns ErrMacMismatch on any discrepancy,
// including a length mismatch.
func Verify(hmacKey, data, wantTag []byte) error {
	if len(wantTag) != SignatureSize {
		return ErrMacMismatch
	}
	tag := Sign(hmacKey, data)
	if !hmac.Equal(tag[:], wantTag) {
		return ErrMacMismatch
	}
	return nil
}
