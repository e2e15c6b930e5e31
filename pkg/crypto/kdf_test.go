package crypto

import "testing"

func TestNewKeysFromSecretSplitsCorrectly(t *testing.T) {
	secret := make([]byte, SecretSize)
	for i := range secret {
		secret[i] = byte(i)
	}
	keys, err := NewKeysFromSecret(secret)
	if err != nil {
		t.Fatalf("NewKeysFromSecret: %v", err)
	}
	for i := 0; i < AESKeySize; i++ {
		if keys.AES[i] != byte(i) {
			t.Fatalf("AES key byte %d = %d, want %d", i, keys.AES[i], i)
		}
	}
	for i := 0; i < IVKeySize; i++ {
		if keys.IV[i] != byte(16+i) {
			t.Fatalf("IV key byte %d = %d, want %d", i, keys.IV[i], 16+i)
		}
	}
	for i := 0; i < HMACKeySize; i++ {
		if keys.HMAC[i] != byte(32+i) {
			t.Fatalf("HMAC key byte %d = %d, want %d", i, keys.HMAC[i], 32+i)
		}
	}
}

func TestNewKeysFromSecretRejectsWrongLength(t *testing.T) {
	if _, err := NewKeysFromSecret(make([]byte, 63)); err == nil {
		t.Error("expected error for 63-byte secret")
	}
	if _, err := NewKeysFromSecret(make([]byte, 65)); err == nil {
		t.Error("expected error for 65-byte secret")
	}
}

func TestDeriveKeysIsDeterministic(t *testing.T) {
	secret := []byte("a fixed shared secret for testing purposes!!!!")
	k1 := DeriveKeys(secret)
	k2 := DeriveKeys(secret)
	if k1 != k2 {
		t.Error("DeriveKeys is not deterministic for the same input")
	}
}

func TestDeriveKeysDiffersByInput(t *testing.T) {
	k1 := DeriveKeys([]byte("secret one"))
	k2 := DeriveKeys([]byte("secret two"))
	if k1 == k2 {
		t.Error("different shared secrets produced identical derived keys")
	}
}

func TestDeriveEndToEnd(t *testing.T) {
	consoleKP, err := GenerateKeyPair(Rand)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	clientPub, clientKeys, err := Derive(consoleKP.PublicKey())
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	consoleSecret, err := consoleKP.ECDH(clientPub)
	if err != nil {
		t.Fatalf("console ECDH: %v", err)
	}
	consoleKeys := DeriveKeys(consoleSecret)

	if clientKeys != consoleKeys {
		t.Error("client and console derived different session keys")
	}
}
