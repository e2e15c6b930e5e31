package session

import "errors"

// Session state errors.
var (
	// ErrAlreadyConnected is returned by RequireDisconnected when the
	// session already holds derived keys.
	ErrAlreadyConnected = errors.New("session: already connected")

	// ErrNotConnected is returned by RequireConnected when no keys have
	// been established yet.
	ErrNotConnected = errors.New("session: not connected")
)
