package wire

// SGString is the protocol's length-prefixed, null-terminated UTF-8
// string: a big-endian u16 byte count N, N UTF-8 bytes, then one trailing
// 0x00 byte that is not counted in N.
type SGString struct {
	Value string
}

// NewSGString wraps a Go string as an SGString.
func NewSGString(s string) SGString {
	return SGString{Value: s}
}

// DecodeSGString reads an SGString from r. The trailing byte must be
// 0x00, or ErrInvalidTerminator is returned.
func DecodeSGString(r *Reader) (SGString, error) {
	n, err := r.U16()
	if err != nil {
		return SGString{}, err
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return SGString{}, err
	}
	term, err := r.U8()
	if err != nil {
		return SGString{}, err
	}
	if term != 0 {
		return SGString{}, ErrInvalidTerminator
	}
	return SGString{Value: string(b)}, nil
}

// Encode writes the SGString's length prefix, UTF-8 bytes, and terminator.
func (s SGString) Encode(w *Writer) {
	b := []byte(s.Value)
	w.U16(uint16(len(b)))
	w.Bytes(b)
	w.U8(0)
}
