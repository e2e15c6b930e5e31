package wire

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Writer accumulates a payload's serialized bytes. Every payload's Encode
// method writes into one of these; the caller collects the result with
// Take().
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// U8 appends a single byte.
func (w *Writer) U8(v uint8) {
	w.buf.WriteByte(v)
}

// U16 appends a big-endian uint16.
func (w *Writer) U16(v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

// U32 appends a big-endian uint32.
func (w *Writer) U32(v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// U64 appends a big-endian uint64.
func (w *Writer) U64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// F32 appends a big-endian IEEE-754 float32.
func (w *Writer) F32(v float32) {
	w.U32(math.Float32bits(v))
}

// Bytes appends b verbatim.
func (w *Writer) Bytes(b []byte) {
	w.buf.Write(b)
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Take returns the accumulated bytes.
func (w *Writer) Take() []byte {
	return w.buf.Bytes()
}
