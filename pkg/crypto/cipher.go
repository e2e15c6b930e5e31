package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// BlockSize is the AES block size; CBC ciphertexts and the zero-IV used by
// GenerateIV are always a multiple of this.
const BlockSize = aes.BlockSize

// AlignedLen rounds n up to the next multiple of BlockSize, or returns n
// unchanged if it is already aligned.
func AlignedLen(n int) int {
	if n%BlockSize == 0 {
		return n
	}
	return n + (BlockSize - n%BlockSize)
}

// Encrypt AES-128-CBC encrypts plaintext under aesKey and iv. When the
// plaintext length is already block-aligned it is encrypted with no
// padding; otherwise it is PKCS#7 padded first. This asymmetry mirrors the
// protocol's own behavior, not a choice made here.
func Encrypt(aesKey [AESKeySize]byte, iv [BlockSize]byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(aesKey[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoUnspecified, err)
	}

	var padded []byte
	if len(plaintext)%BlockSize == 0 {
		padded = plaintext
	} else {
		padded = pkcs7Pad(plaintext, BlockSize)
	}

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// Decrypt AES-128-CBC decrypts ciphertext under aesKey and iv, always
// assuming PKCS#7 padding, then truncates the result to plaintextLen. The
// caller supplies plaintextLen from the packet header because an aligned
// plaintext that was encrypted with no padding looks, byte-for-byte, like a
// PKCS#7-padded block whose pad value happens to be meaningful payload —
// only the header's declared length disambiguates the two.
func Decrypt(aesKey [AESKeySize]byte, iv [BlockSize]byte, ciphertext []byte, plaintextLen int) ([]byte, error) {
	if len(ciphertext) == 0 {
		if plaintextLen != 0 {
			return nil, ErrBufferOverflow
		}
		return []byte{}, nil
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext not block-aligned", ErrPaddingInvalid)
	}

	block, err := aes.NewCipher(aesKey[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCryptoUnspecified, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv[:]).CryptBlocks(plaintext, ciphertext)

	if plaintextLen == len(plaintext) {
		// Caller knows this region was encrypted with no padding (it was
		// already block-aligned); trust the declared length rather than
		// the trailing bytes, which are not a padding marker at all.
		return plaintext, nil
	}

	unpadded, err := pkcs7Unpad(plaintext, BlockSize)
	if err != nil {
		return nil, err
	}
	if len(unpadded) != plaintextLen {
		return nil, fmt.Errorf("%w: declared length %d, decoded %d", ErrPaddingInvalid, plaintextLen, len(unpadded))
	}
	return unpadded, nil
}

// GenerateIV derives the per-message CBC IV for a Message packet: the
// first 16 bytes of the packet's serialized header are themselves
// AES-CBC-encrypted under ivKey with a zero IV and no padding. This binds
// the IV to the header contents, including the sequence number.
func GenerateIV(ivKey [IVKeySize]byte, first16OfHeader [BlockSize]byte) ([BlockSize]byte, error) {
	block, err := aes.NewCipher(ivKey[:])
	if err != nil {
		return [BlockSize]byte{}, fmt.Errorf("%w: %v", ErrCryptoUnspecified, err)
	}

	var zeroIV [BlockSize]byte
	var out [BlockSize]byte
	cipher.NewCBCEncrypter(block, zeroIV[:]).CryptBlocks(out[:], first16OfHeader[:])
	return out, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: not block-aligned", ErrPaddingInvalid)
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("%w: bad pad length %d", ErrPaddingInvalid, padLen)
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: inconsistent pad bytes", ErrPaddingInvalid)
		}
	}
	return data[:len(data)-padLen], nil
}
