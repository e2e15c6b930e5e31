package crypto

import (
	"bytes"
	"testing"
)

func TestAlignedLen(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"already aligned", 32, 32},
		{"zero", 0, 0},
		{"one byte over", 17, 32},
		{"one byte under", 15, 16},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AlignedLen(tc.n); got != tc.want {
				t.Errorf("AlignedLen(%d) = %d, want %d", tc.n, got, tc.want)
			}
			if got := AlignedLen(tc.n); got%BlockSize != 0 {
				t.Errorf("AlignedLen(%d) = %d is not a multiple of %d", tc.n, got, BlockSize)
			}
		})
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	var aesKey [AESKeySize]byte
	var iv [BlockSize]byte
	for i := range aesKey {
		aesKey[i] = byte(i)
	}
	for i := range iv {
		iv[i] = byte(i * 2)
	}

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"block aligned", bytes.Repeat([]byte{0xAB}, 32)},
		{"empty", []byte{}},
		{"unaligned", []byte("the quick brown fox")},
		{"one byte", []byte{0x7f}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := Encrypt(aesKey, iv, tc.plaintext)
			if err != nil {
				t.Fatalf("Encrypt: %v", err)
			}
			if len(ciphertext)%BlockSize != 0 {
				t.Fatalf("ciphertext length %d not block aligned", len(ciphertext))
			}
			plaintext, err := Decrypt(aesKey, iv, ciphertext, len(tc.plaintext))
			if err != nil {
				t.Fatalf("Decrypt: %v", err)
			}
			if !bytes.Equal(plaintext, tc.plaintext) {
				t.Errorf("round trip mismatch: got %x, want %x", plaintext, tc.plaintext)
			}
		})
	}
}

func TestEncryptUsesNoPaddingWhenAligned(t *testing.T) {
	var aesKey [AESKeySize]byte
	var iv [BlockSize]byte
	plaintext := bytes.Repeat([]byte{0x11}, 16)

	ciphertext, err := Encrypt(aesKey, iv, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if len(ciphertext) != 16 {
		t.Fatalf("expected exactly one block (no padding added), got %d bytes", len(ciphertext))
	}
}

func TestDecryptRejectsBadPadding(t *testing.T) {
	var aesKey [AESKeySize]byte
	var iv [BlockSize]byte
	plaintext := []byte("unaligned payload")

	ciphertext, err := Encrypt(aesKey, iv, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ciphertext[len(ciphertext)-1] ^= 0xFF

	if _, err := Decrypt(aesKey, iv, ciphertext, len(plaintext)); err == nil {
		t.Error("expected decrypt of tampered ciphertext to fail")
	}
}

// TestGenerateIVIsDeterministicAndHeaderBound checks the two properties
// GenerateIV actually needs to satisfy: it is a pure function of the key
// and header bytes, and it changes whenever the header (e.g. the sequence
// number embedded in it) changes.
func TestGenerateIVIsDeterministicAndHeaderBound(t *testing.T) {
	secret := make([]byte, SecretSize)
	for i := range secret {
		secret[i] = byte(i)
	}
	keys, err := NewKeysFromSecret(secret)
	if err != nil {
		t.Fatalf("NewKeysFromSecret: %v", err)
	}

	var header16 [BlockSize]byte
	for i := range header16 {
		header16[i] = byte(i)
	}

	iv1, err := GenerateIV(keys.IV, header16)
	if err != nil {
		t.Fatalf("GenerateIV: %v", err)
	}
	iv2, err := GenerateIV(keys.IV, header16)
	if err != nil {
		t.Fatalf("GenerateIV: %v", err)
	}
	if iv1 != iv2 {
		t.Errorf("GenerateIV is not deterministic: %v != %v", iv1, iv2)
	}

	header16[3] ^= 0xFF
	iv3, err := GenerateIV(keys.IV, header16)
	if err != nil {
		t.Fatalf("GenerateIV: %v", err)
	}
	if iv3 == iv1 {
		t.Error("GenerateIV did not change when header bytes changed")
	}
}
