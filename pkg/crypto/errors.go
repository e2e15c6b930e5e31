package crypto

import "errors"

// Crypto engine errors.
var (
	// ErrCryptoUnspecified covers failures in the underlying primitives that
	// do not map to a more specific sentinel (short randomness reads, curve
	// rejections from the stdlib, and the like).
	ErrCryptoUnspecified = errors.New("crypto: unspecified failure")

	// ErrMacMismatch is returned by Verify when the computed tag does not
	// match the supplied one.
	ErrMacMismatch = errors.New("crypto: mac mismatch")

	// ErrBufferOverflow is returned when a caller-supplied buffer is too
	// small for the operation's output.
	ErrBufferOverflow = errors.New("crypto: buffer too small")

	// ErrInvalidKey is returned when key material is the wrong length.
	ErrInvalidKey = errors.New("crypto: invalid key length")

	// ErrInvalidIV is returned when an IV is the wrong length for AES-CBC.
	ErrInvalidIV = errors.New("crypto: invalid iv length")

	// ErrInvalidPublicKey is returned when a peer public key is malformed
	// or not a valid point on P-256.
	ErrInvalidPublicKey = errors.New("crypto: invalid public key")

	// ErrPaddingInvalid is returned by decrypt when the PKCS#7 padding on a
	// decrypted block is malformed.
	ErrPaddingInvalid = errors.New("crypto: invalid padding")
)
