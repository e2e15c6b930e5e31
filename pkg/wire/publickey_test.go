package wire

import "testing"

func TestPublicKeyRoundTrip(t *testing.T) {
	var pk PublicKey
	pk.KeyType = 0
	for i := range pk.Key {
		pk.Key[i] = byte(i)
	}

	w := NewWriter()
	pk.Encode(w)
	if w.Len() != 2+64 {
		t.Fatalf("encoded length = %d, want %d", w.Len(), 66)
	}

	r := NewReader(w.Take())
	got, err := DecodePublicKey(r)
	if err != nil {
		t.Fatalf("DecodePublicKey: %v", err)
	}
	if got != pk {
		t.Errorf("got %+v, want %+v", got, pk)
	}
}
