package wire

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"
)

func selfSignedP256Cert(t *testing.T, commonName string) ([]byte, *ecdsa.PrivateKey) {
	t.Helper()
	priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    time.Unix(0, 0),
		NotAfter:     time.Unix(0, 0).Add(24 * time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &priv.PublicKey, priv)
	if err != nil {
		t.Fatalf("CreateCertificate: %v", err)
	}
	return der, priv
}

func TestCertificateRoundTripPreservesDER(t *testing.T) {
	der, priv := selfSignedP256Cert(t, "FFFFFFFFFFF")

	w := NewWriter()
	w.U16(uint16(len(der)))
	w.Bytes(der)

	r := NewReader(w.Take())
	cert, err := DecodeCertificate(r)
	if err != nil {
		t.Fatalf("DecodeCertificate: %v", err)
	}
	if cert.CommonName != "FFFFFFFFFFF" {
		t.Errorf("CommonName = %q, want %q", cert.CommonName, "FFFFFFFFFFF")
	}

	xBytes := priv.PublicKey.X.Bytes()
	yBytes := priv.PublicKey.Y.Bytes()
	var want [64]byte
	copy(want[32-len(xBytes):32], xBytes)
	copy(want[64-len(yBytes):], yBytes)
	if cert.PublicKey != want {
		t.Errorf("PublicKey point mismatch")
	}

	w2 := NewWriter()
	cert.Encode(w2)
	if string(w2.Take()) != string(w.Take()) {
		t.Error("re-encoded certificate bytes differ from the original")
	}
}

func TestCertificateRejectsGarbage(t *testing.T) {
	w := NewWriter()
	garbage := []byte{0x01, 0x02, 0x03, 0x04}
	w.U16(uint16(len(garbage)))
	w.Bytes(garbage)

	r := NewReader(w.Take())
	if _, err := DecodeCertificate(r); err == nil {
		t.Error("expected DecodeCertificate to reject non-DER bytes")
	}
}
