package wire

import (
	"strings"

	"github.com/google/uuid"
)

// DecodeUUIDBytes reads a UUID in its 16-raw-byte RFC 4122 form.
func DecodeUUIDBytes(r *Reader) (uuid.UUID, error) {
	b, err := r.Bytes(16)
	if err != nil {
		return uuid.Nil, err
	}
	var u uuid.UUID
	copy(u[:], b)
	return u, nil
}

// EncodeUUIDBytes writes a UUID as 16 raw bytes.
func EncodeUUIDBytes(w *Writer, u uuid.UUID) {
	w.Bytes(u[:])
}

// DecodeUUIDText reads a UUID in its length-prefixed, hyphenated,
// upper-case ASCII form: a DynArray<u16,u8> of the text representation.
func DecodeUUIDText(r *Reader) (uuid.UUID, error) {
	n, err := r.U16()
	if err != nil {
		return uuid.Nil, err
	}
	if int(n) > r.Remaining() {
		return uuid.Nil, ErrArrayTooLong
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return uuid.Nil, err
	}
	u, err := uuid.Parse(string(b))
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return u, nil
}

// EncodeUUIDText writes a UUID as its length-prefixed, hyphenated,
// upper-case ASCII form.
func EncodeUUIDText(w *Writer, u uuid.UUID) {
	text := strings.ToUpper(u.String())
	w.U16(uint16(len(text)))
	w.Bytes([]byte(text))
}
