package session

import (
	"errors"
	"testing"

	"github.com/openxbox/smartglass-go/pkg/crypto"
)

func TestNewDisconnectedRequiresDisconnectedOK(t *testing.T) {
	s := NewDisconnected()
	if err := s.RequireDisconnected(); err != nil {
		t.Errorf("RequireDisconnected on fresh state: %v", err)
	}
	if _, _, _, err := s.RequireConnected(); !errors.Is(err, ErrNotConnected) {
		t.Errorf("RequireConnected on fresh state = %v, want ErrNotConnected", err)
	}
}

func TestSetConnectedGatesFlip(t *testing.T) {
	s := NewDisconnected()
	var keys crypto.Keys
	s.SetConnected(keys, Connecting, NotPaired)

	if err := s.RequireDisconnected(); !errors.Is(err, ErrAlreadyConnected) {
		t.Errorf("RequireDisconnected after connect = %v, want ErrAlreadyConnected", err)
	}
	gotKeys, phase, pairing, err := s.RequireConnected()
	if err != nil {
		t.Fatalf("RequireConnected: %v", err)
	}
	if gotKeys != keys {
		t.Error("RequireConnected returned different keys than were set")
	}
	if phase != Connecting || pairing != NotPaired {
		t.Errorf("phases = (%v, %v), want (Connecting, NotPaired)", phase, pairing)
	}
}

func TestSetDisconnectedZeroizesKeys(t *testing.T) {
	var keys crypto.Keys
	keys.AES[0] = 0xFF
	s := NewConnected(keys, Connected, Paired)

	s.SetDisconnected()
	if err := s.RequireDisconnected(); err != nil {
		t.Errorf("RequireDisconnected after disconnect: %v", err)
	}
	if s.keys != (crypto.Keys{}) {
		t.Error("SetDisconnected left key material in place")
	}
}

func TestSetPhasesRequiresConnected(t *testing.T) {
	s := NewDisconnected()
	if err := s.SetPhases(Connected, Paired); !errors.Is(err, ErrNotConnected) {
		t.Errorf("SetPhases on disconnected state = %v, want ErrNotConnected", err)
	}

	s.SetConnected(crypto.Keys{}, Connecting, NotPaired)
	if err := s.SetPhases(Connected, Paired); err != nil {
		t.Fatalf("SetPhases: %v", err)
	}
	_, phase, pairing, err := s.RequireConnected()
	if err != nil {
		t.Fatalf("RequireConnected: %v", err)
	}
	if phase != Connected || pairing != Paired {
		t.Errorf("phases = (%v, %v), want (Connected, Paired)", phase, pairing)
	}
}
