// Package crypto implements the Xbox SmartGlass session-cryptographic
// envelope: ephemeral P-256 ECDH key agreement, the two-stage salted
// SHA-512 key derivation, AES-128-CBC payload confidentiality with its
// asymmetric padding rule, the per-message derived IV, and HMAC-SHA256
// whole-datagram integrity.
package crypto
