package crypto

import "testing"

func TestECDHAgreementMatches(t *testing.T) {
	client, err := GenerateKeyPair(Rand)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	console, err := GenerateKeyPair(Rand)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	clientSecret, err := client.ECDH(console.PublicKey())
	if err != nil {
		t.Fatalf("client ECDH: %v", err)
	}
	consoleSecret, err := console.ECDH(client.PublicKey())
	if err != nil {
		t.Fatalf("console ECDH: %v", err)
	}

	if string(clientSecret) != string(consoleSecret) {
		t.Errorf("shared secrets diverge: %x != %x", clientSecret, consoleSecret)
	}
}

func TestPublicKeyRoundTrip(t *testing.T) {
	kp, err := GenerateKeyPair(Rand)
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	pub := kp.PublicKey()
	if err := ValidatePublicKey(pub); err != nil {
		t.Errorf("ValidatePublicKey rejected a freshly generated key: %v", err)
	}
}

func TestValidatePublicKeyRejectsGarbage(t *testing.T) {
	var garbage [RawPublicKeySize]byte
	for i := range garbage {
		garbage[i] = 0xFF
	}
	if err := ValidatePublicKey(garbage); err == nil {
		t.Error("expected all-0xFF point to be rejected as not on curve")
	}
}

func TestKeyPairFromPrivateKeyIsDeterministic(t *testing.T) {
	scalar := make([]byte, FieldSize)
	for i := range scalar {
		scalar[i] = byte(i + 1)
	}
	kp1, err := KeyPairFromPrivateKey(scalar)
	if err != nil {
		t.Fatalf("KeyPairFromPrivateKey: %v", err)
	}
	kp2, err := KeyPairFromPrivateKey(scalar)
	if err != nil {
		t.Fatalf("KeyPairFromPrivateKey: %v", err)
	}
	if kp1.PublicKey() != kp2.PublicKey() {
		t.Error("same scalar produced different public keys")
	}
}
