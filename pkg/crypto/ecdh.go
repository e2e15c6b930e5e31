package crypto

import (
	"crypto/ecdh"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// P-256 key material sizes. SmartGlass carries public keys as 64 raw bytes
// (the uncompressed point X||Y, without the leading 0x04 tag that the
// stdlib and most wire formats use), so all conversions here add or strip
// that tag at the boundary.
const (
	// FieldSize is the size in bytes of a P-256 field element.
	FieldSize = 32

	// RawPublicKeySize is the size of an uncompressed point with its tag
	// byte stripped: X (32 bytes) || Y (32 bytes).
	RawPublicKeySize = 2 * FieldSize
)

// KeyPair is an ephemeral P-256 key pair used for the ECDH handshake.
type KeyPair struct {
	private *ecdh.PrivateKey
}

// GenerateKeyPair generates a fresh ephemeral P-256 key pair using rnd as
// the randomness source.
func GenerateKeyPair(rnd io.Reader) (*KeyPair, error) {
	priv, err := ecdh.P256().GenerateKey(rnd)
	if err != nil {
		return nil, fmt.Errorf("%w: generate p256 key: %v", ErrCryptoUnspecified, err)
	}
	return &KeyPair{private: priv}, nil
}

// KeyPairFromPrivateKey reconstructs a key pair from a raw 32-byte scalar,
// used in tests to pin the client's ephemeral key.
func KeyPairFromPrivateKey(scalar []byte) (*KeyPair, error) {
	priv, err := ecdh.P256().NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid private scalar: %v", ErrInvalidKey, err)
	}
	return &KeyPair{private: priv}, nil
}

// PublicKey returns the 64-byte raw uncompressed public point (X||Y) for
// this key pair, matching the wire.PublicKey primitive.
func (kp *KeyPair) PublicKey() [RawPublicKeySize]byte {
	var out [RawPublicKeySize]byte
	tagged := kp.private.PublicKey().Bytes() // 0x04 || X || Y
	copy(out[:], tagged[1:])
	return out
}

// ECDH computes the raw shared secret (the x-coordinate of the agreed
// point) against a peer's 64-byte raw public key.
func (kp *KeyPair) ECDH(peerPublicKey [RawPublicKeySize]byte) ([]byte, error) {
	peerPub, err := decodeRawPublicKey(peerPublicKey)
	if err != nil {
		return nil, err
	}
	secret, err := kp.private.ECDH(peerPub)
	if err != nil {
		return nil, fmt.Errorf("%w: ecdh: %v", ErrCryptoUnspecified, err)
	}
	return secret, nil
}

// decodeRawPublicKey re-tags a 64-byte raw point as an uncompressed stdlib
// public key and validates it lies on the P-256 curve.
func decodeRawPublicKey(raw [RawPublicKeySize]byte) (*ecdh.PublicKey, error) {
	x := new(big.Int).SetBytes(raw[:FieldSize])
	y := new(big.Int).SetBytes(raw[FieldSize:])
	if !elliptic.P256().IsOnCurve(x, y) {
		return nil, ErrInvalidPublicKey
	}

	tagged := make([]byte, 1+RawPublicKeySize)
	tagged[0] = 0x04
	copy(tagged[1:], raw[:])

	pub, err := ecdh.P256().NewPublicKey(tagged)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pub, nil
}

// ValidatePublicKey reports whether raw decodes to a point on the P-256
// curve, without performing a key agreement.
func ValidatePublicKey(raw [RawPublicKeySize]byte) error {
	_, err := decodeRawPublicKey(raw)
	return err
}

// Rand is the default randomness source for GenerateKeyPair, exposed so
// callers and tests can substitute a deterministic reader.
var Rand io.Reader = rand.Reader
