package wire

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDBytesRoundTrip(t *testing.T) {
	u := uuid.MustParse("DE305D54-75B4-431B-ADB2-EB6B9E546014")

	w := NewWriter()
	EncodeUUIDBytes(w, u)
	if w.Len() != 16 {
		t.Fatalf("encoded length = %d, want 16", w.Len())
	}

	r := NewReader(w.Take())
	got, err := DecodeUUIDBytes(r)
	if err != nil {
		t.Fatalf("DecodeUUIDBytes: %v", err)
	}
	if got != u {
		t.Errorf("got %v, want %v", got, u)
	}
}

func TestUUIDTextRoundTrip(t *testing.T) {
	u := uuid.MustParse("de305d54-75b4-431b-adb2-eb6b9e546014")

	w := NewWriter()
	EncodeUUIDText(w, u)

	r := NewReader(w.Take())
	got, err := DecodeUUIDText(r)
	if err != nil {
		t.Fatalf("DecodeUUIDText: %v", err)
	}
	if got != u {
		t.Errorf("got %v, want %v", got, u)
	}
}

func TestUUIDTextIsUpperCaseHyphenated(t *testing.T) {
	u := uuid.MustParse("de305d54-75b4-431b-adb2-eb6b9e546014")
	w := NewWriter()
	EncodeUUIDText(w, u)

	r := NewReader(w.Take())
	n, err := r.U16()
	if err != nil {
		t.Fatalf("U16: %v", err)
	}
	if n != 36 {
		t.Fatalf("length prefix = %d, want 36", n)
	}
	text, err := r.Bytes(int(n))
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	want := "DE305D54-75B4-431B-ADB2-EB6B9E546014"
	if string(text) != want {
		t.Errorf("text = %q, want %q", text, want)
	}
}
