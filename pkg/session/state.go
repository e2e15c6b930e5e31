// Package session holds the SmartGlass connection state: the sum type the
// framing codec consults (but never mutates) to decide which packet kinds
// are legal, and the key material a Connected session carries.
package session

import (
	"sync"

	"github.com/openxbox/smartglass-go/pkg/crypto"
)

// State is Disconnected when newly constructed and becomes Connected once
// the driving session layer calls SetConnected after a successful ECDH
// handshake. It is safe for concurrent use: the codec takes a read-locked
// snapshot on every Decode call and on every Encode of a packet that needs
// session keys, while the driving layer holds the write lock only while
// transitioning phases or establishing keys.
type State struct {
	mu sync.RWMutex

	connected       bool
	keys            crypto.Keys
	connectionPhase ConnectionPhase
	pairingPhase    PairingPhase
}

// NewDisconnected returns a State with no session keys established.
func NewDisconnected() *State {
	return &State{}
}

// NewConnected returns a State carrying the given keys and phases, as if
// produced by a completed ECDH handshake.
func NewConnected(keys crypto.Keys, connectionPhase ConnectionPhase, pairingPhase PairingPhase) *State {
	return &State{
		connected:       true,
		keys:            keys,
		connectionPhase: connectionPhase,
		pairingPhase:    pairingPhase,
	}
}

// SetConnected transitions the state to Connected, installing the given
// keys and phases. Called by the driving session layer after a successful
// handshake; the codec never calls this.
func (s *State) SetConnected(keys crypto.Keys, connectionPhase ConnectionPhase, pairingPhase PairingPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = true
	s.keys = keys
	s.connectionPhase = connectionPhase
	s.pairingPhase = pairingPhase
}

// SetDisconnected resets the state to Disconnected, zeroizing any key
// material it held.
func (s *State) SetDisconnected() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.connected = false
	s.keys = crypto.Keys{}
	s.connectionPhase = 0
	s.pairingPhase = 0
}

// SetPhases updates the connection and pairing phase of an already
// Connected state without disturbing its keys.
func (s *State) SetPhases(connectionPhase ConnectionPhase, pairingPhase PairingPhase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.connected {
		return ErrNotConnected
	}
	s.connectionPhase = connectionPhase
	s.pairingPhase = pairingPhase
	return nil
}

// RequireDisconnected gates codec paths that are only legal before a
// session exists (PowerOnRequest, DiscoveryRequest, DiscoveryResponse,
// ConnectRequest). It returns ErrAlreadyConnected if keys are present.
func (s *State) RequireDisconnected() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.connected {
		return ErrAlreadyConnected
	}
	return nil
}

// RequireConnected gates codec paths that need session keys
// (ConnectResponse and Message in both directions, and ConnectRequest
// encoding). It returns the keys and phases by value, so
// the caller holds an immutable snapshot safe to use without further
// locking.
func (s *State) RequireConnected() (crypto.Keys, ConnectionPhase, PairingPhase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.connected {
		return crypto.Keys{}, 0, 0, ErrNotConnected
	}
	return s.keys, s.connectionPhase, s.pairingPhase, nil
}

// IsConnected reports whether the state currently carries session keys.
func (s *State) IsConnected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connected
}
