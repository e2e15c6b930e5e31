package wire

// DecodeU32ArrayU16Count reads a DynArray<u16,u32>: a u16 element count
// followed by that many big-endian u32 values.
func DecodeU32ArrayU16Count(r *Reader) ([]uint32, error) {
	n, err := r.U16()
	if err != nil {
		return nil, err
	}
	if int(n)*4 > r.Remaining() {
		return nil, ErrArrayTooLong
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// EncodeU32ArrayU16Count writes vals as a u16-count-prefixed array of
// big-endian u32 values.
func EncodeU32ArrayU16Count(w *Writer, vals []uint32) {
	w.U16(uint16(len(vals)))
	for _, v := range vals {
		w.U32(v)
	}
}

// DecodeU32ArrayU32Count reads a DynArray<u32,u32>: a u32 element count
// followed by that many big-endian u32 values. Used by Acknowledge's
// processed/rejected lists, which are counted wider than most arrays.
func DecodeU32ArrayU32Count(r *Reader) ([]uint32, error) {
	n, err := r.U32()
	if err != nil {
		return nil, err
	}
	if int(n)*4 > r.Remaining() {
		return nil, ErrArrayTooLong
	}
	out := make([]uint32, n)
	for i := range out {
		v, err := r.U32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// EncodeU32ArrayU32Count writes vals as a u32-count-prefixed array of
// big-endian u32 values.
func EncodeU32ArrayU32Count(w *Writer, vals []uint32) {
	w.U32(uint32(len(vals)))
	for _, v := range vals {
		w.U32(v)
	}
}

// DecodeBytesU8ArrayU16Count reads a DynArray<u16,u8>: a u16 byte count
// followed by that many raw bytes. Used by padding/variable-byte regions
// that are not otherwise typed.
func DecodeBytesU8ArrayU16Count(r *Reader) ([]byte, error) {
	n, err := r.U16()
	if err != nil {
		return nil, err
	}
	return r.Bytes(int(n))
}

// EncodeBytesU8ArrayU16Count writes b as a u16-count-prefixed byte array.
func EncodeBytesU8ArrayU16Count(w *Writer, b []byte) {
	w.U16(uint16(len(b)))
	w.Bytes(b)
}
