package wire

import (
	"errors"
	"reflect"
	"testing"
)

func TestU32ArrayRoundTrip(t *testing.T) {
	vals := []uint32{1, 2, 3, 0xFFFFFFFF}
	w := NewWriter()
	EncodeU32ArrayU16Count(w, vals)

	r := NewReader(w.Take())
	got, err := DecodeU32ArrayU16Count(r)
	if err != nil {
		t.Fatalf("DecodeU32ArrayU16Count: %v", err)
	}
	if !reflect.DeepEqual(got, vals) {
		t.Errorf("got %v, want %v", got, vals)
	}
}

func TestU32ArrayEmpty(t *testing.T) {
	w := NewWriter()
	EncodeU32ArrayU16Count(w, nil)

	r := NewReader(w.Take())
	got, err := DecodeU32ArrayU16Count(r)
	if err != nil {
		t.Fatalf("DecodeU32ArrayU16Count: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestU32ArrayRejectsOversizedCount(t *testing.T) {
	w := NewWriter()
	w.U16(1000) // claims 1000 elements, no data follows
	r := NewReader(w.Take())
	if _, err := DecodeU32ArrayU16Count(r); !errors.Is(err, ErrArrayTooLong) {
		t.Errorf("DecodeU32ArrayU16Count = %v, want ErrArrayTooLong", err)
	}
}

func TestBytesArrayRoundTrip(t *testing.T) {
	b := []byte{0xde, 0xad, 0xbe, 0xef}
	w := NewWriter()
	EncodeBytesU8ArrayU16Count(w, b)

	r := NewReader(w.Take())
	got, err := DecodeBytesU8ArrayU16Count(r)
	if err != nil {
		t.Fatalf("DecodeBytesU8ArrayU16Count: %v", err)
	}
	if !reflect.DeepEqual(got, b) {
		t.Errorf("got %x, want %x", got, b)
	}
}
