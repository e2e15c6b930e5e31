package wire

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/x509"
)

// Certificate wraps a length-prefixed DER-encoded X.509 certificate. Only
// the subject common name and the embedded P-256 public point are
// extracted; no chain validation is performed, and the original DER bytes
// are retained so Encode can reproduce the input exactly.
type Certificate struct {
	DER        []byte
	CommonName string
	PublicKey  [64]byte // uncompressed point, 0x04 tag stripped
}

// DecodeCertificate reads a u16-length-prefixed DER certificate, parses it
// to extract the subject CN and public point, and retains the raw DER for
// lossless re-encoding.
func DecodeCertificate(r *Reader) (Certificate, error) {
	n, err := r.U16()
	if err != nil {
		return Certificate{}, err
	}
	if int(n) > r.Remaining() {
		return Certificate{}, ErrArrayTooLong
	}
	der, err := r.Bytes(int(n))
	if err != nil {
		return Certificate{}, err
	}

	cert, err := x509.ParseCertificate(der)
	if err != nil {
		return Certificate{}, ErrInvalidCertificate
	}
	pub, ok := cert.PublicKey.(*ecdsa.PublicKey)
	if !ok || pub.Curve != elliptic.P256() {
		return Certificate{}, ErrInvalidCertificate
	}

	var raw [64]byte
	xBytes := pub.X.Bytes()
	yBytes := pub.Y.Bytes()
	copy(raw[32-len(xBytes):32], xBytes)
	copy(raw[64-len(yBytes):], yBytes)

	return Certificate{
		DER:        der,
		CommonName: cert.Subject.CommonName,
		PublicKey:  raw,
	}, nil
}

// Encode writes the certificate's length prefix followed by the original
// DER bytes, unchanged.
func (c Certificate) Encode(w *Writer) {
	w.U16(uint16(len(c.DER)))
	w.Bytes(c.DER)
}
