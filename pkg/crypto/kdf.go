package crypto

import (
	"crypto/sha512"
	"fmt"
)

// Salts prepended and appended to the raw ECDH shared secret before the
// SHA-512 derivation step. These are protocol constants, not implementation
// choices.
var (
	kdfSaltPrefix = []byte{0xD6, 0x37, 0xF1, 0xAA, 0xE2, 0xF0, 0x41, 0x8C}
	kdfSaltSuffix = []byte{0xA8, 0xF8, 0x1A, 0x57, 0x4E, 0x22, 0x8A, 0xB7}
)

const (
	// AESKeySize is the size of the AES-128 confidentiality key.
	AESKeySize = 16
	// IVKeySize is the size of the key used to derive per-message IVs.
	IVKeySize = 16
	// HMACKeySize is the size of the HMAC-SHA256 signing key.
	HMACKeySize = 32
	// SecretSize is the size of the combined key material (AES+IV+HMAC),
	// and the size required by NewKeysFromSecret for test injection.
	SecretSize = AESKeySize + IVKeySize + HMACKeySize
)

// Keys holds the three subkeys derived from an ECDH shared secret: the
// AES-128-CBC confidentiality key, the key used to derive per-message IVs,
// and the HMAC-SHA256 signing key.
type Keys struct {
	AES  [AESKeySize]byte
	IV   [IVKeySize]byte
	HMAC [HMACKeySize]byte
}

// DeriveKeys applies the protocol's key derivation function to a raw ECDH
// shared secret: prepend a fixed salt, append a fixed salt, SHA-512 the
// result, then split the 64-byte digest into AES || IV || HMAC subkeys.
func DeriveKeys(sharedSecret []byte) Keys {
	salted := make([]byte, 0, len(kdfSaltPrefix)+len(sharedSecret)+len(kdfSaltSuffix))
	salted = append(salted, kdfSaltPrefix...)
	salted = append(salted, sharedSecret...)
	salted = append(salted, kdfSaltSuffix...)

	digest := sha512.Sum512(salted)

	var keys Keys
	copy(keys.AES[:], digest[0:16])
	copy(keys.IV[:], digest[16:32])
	copy(keys.HMAC[:], digest[32:64])
	return keys
}

// NewKeysFromSecret builds a Keys value directly from a 64-byte pre-derived
// secret (AES || IV || HMAC), bypassing ECDH and the salted-SHA-512 step.
// This exists purely so tests can pin session keys to known vectors.
func NewKeysFromSecret(secret []byte) (Keys, error) {
	if len(secret) != SecretSize {
		return Keys{}, fmt.Errorf("%w: want %d bytes, got %d", ErrInvalidKey, SecretSize, len(secret))
	}
	var keys Keys
	copy(keys.AES[:], secret[0:16])
	copy(keys.IV[:], secret[16:32])
	copy(keys.HMAC[:], secret[32:64])
	return keys, nil
}

// Derive generates a fresh ephemeral key pair, performs ECDH against the
// console's public key, and derives the session subkeys. It returns the
// client's own public key (to be sent in ConnectRequest) alongside the
// derived keys.
func Derive(foreignPublicKey [RawPublicKeySize]byte) (ownPublicKey [RawPublicKeySize]byte, keys Keys, err error) {
	kp, err := GenerateKeyPair(Rand)
	if err != nil {
		return ownPublicKey, Keys{}, err
	}
	secret, err := kp.ECDH(foreignPublicKey)
	if err != nil {
		return ownPublicKey, Keys{}, err
	}
	return kp.PublicKey(), DeriveKeys(secret), nil
}
