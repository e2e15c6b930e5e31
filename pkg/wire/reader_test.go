package wire

import (
	"errors"
	"testing"
)

func TestReaderPrimitives(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05})

	u8, err := r.U8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("U8 = %v, %v", u8, err)
	}
	u16, err := r.U16()
	if err != nil || u16 != 0x0203 {
		t.Fatalf("U16 = %v, %v", u16, err)
	}
	u32, err := r.U32()
	if err != nil || u32 != 0x00000004 {
		t.Fatalf("U32 = %v, %v", u32, err)
	}
	u64, err := r.U64()
	if err != nil || u64 != 0x0000000000000005 {
		t.Fatalf("U64 = %v, %v", u64, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderTruncation(t *testing.T) {
	r := NewReader([]byte{0x01})
	if _, err := r.U16(); !errors.Is(err, ErrTruncated) {
		t.Errorf("U16 on 1 byte = %v, want ErrTruncated", err)
	}
}

func TestWriterRoundTrip(t *testing.T) {
	w := NewWriter()
	w.U8(0x01)
	w.U16(0x0203)
	w.U32(0x04050607)
	w.U64(0x08090a0b0c0d0e0f)
	w.Bytes([]byte{0xff, 0xfe})

	r := NewReader(w.Take())
	if v, _ := r.U8(); v != 0x01 {
		t.Errorf("U8 = %#x", v)
	}
	if v, _ := r.U16(); v != 0x0203 {
		t.Errorf("U16 = %#x", v)
	}
	if v, _ := r.U32(); v != 0x04050607 {
		t.Errorf("U32 = %#x", v)
	}
	if v, _ := r.U64(); v != 0x08090a0b0c0d0e0f {
		t.Errorf("U64 = %#x", v)
	}
	rest, _ := r.Bytes(2)
	if rest[0] != 0xff || rest[1] != 0xfe {
		t.Errorf("Bytes = %x", rest)
	}
}
