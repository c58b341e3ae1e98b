// Package qdsa implements the qDSA signature scheme and its companion
// X25519-style Diffie-Hellman exchange over the Gaudry-Schost genus-2
// Kummer surface defined in package kummer, using Bob Jr. (package bobjr)
// as the scheme's hash. This is the only package in this module that
// allocates, logs, or returns errors; fe127, scalar, bobjr, and kummer
// stay pure computation on fixed-size value types.
package qdsa

import (
	"errors"

	"github.com/lix2ng/qdsv/kummer"
	"github.com/lix2ng/qdsv/log"
)

// PublicKey is a compressed Kummer point: the public half of a keypair,
// and the per-party public value in a DH exchange.
type PublicKey [32]byte

// SecretKey is the 64-byte pseudo-random secret Keypair derives from a
// 32-byte seed: bytes 0-31 feed Sign's per-message nonce, bytes 32-63
// are reduced to the long-term scalar d' that DHKeygen-style signing
// uses.
type SecretKey [64]byte

// Signature is a compressed Kummer point (the commitment R) followed by
// a scalar mod N (the response s).
type Signature [64]byte

var (
	// ErrInvalidPublicKey is returned when a 32-byte value does not
	// decompress to a point on the Kummer surface.
	ErrInvalidPublicKey = errors.New("qdsa: public key does not decompress to a valid point")
	// ErrInvalidSignature describes an embedded commitment R that does
	// not decompress. No function in this package returns it: Verify
	// reports that case, like every other rejection, as false, so a bad
	// signature and a bad public key are indistinguishable to its caller.
	ErrInvalidSignature = errors.New("qdsa: signature commitment does not decompress to a valid point")
)

var log_ = log.Default().Module("qdsa")

// Mode selects between the two ladder variants the original engine picks
// at compile time via CONF_QDSA_FULL.
type Mode int

const (
	// ModeFull runs every ladder with the constant-time masked-swap
	// strategy, required whenever any scalar the ladder consumes is
	// secret (Sign, Keypair, DHKeygen, DHExchange).
	ModeFull Mode = iota
	// ModeVerifyOnly runs every ladder with the cheaper, branchy
	// variable-time swap. Valid only for a build that exposes Verify
	// alone, since every scalar Verify's ladders see (h and s) is
	// public by construction.
	ModeVerifyOnly
)

// Params configures which ladder variant the scheme's secret-scalar
// operations use. It is a runtime value rather than a build-time flag
// (unlike the original C source's CONF_QDSA_FULL) so a single binary can
// assert which variant it believes it is linking. Verify always uses the
// public-scalar, variable-time ladder internally regardless of Params,
// since its own scalars are never secret.
type Params struct {
	Mode Mode
}

// DefaultParams returns the constant-time configuration appropriate for
// any build that calls Sign, Keypair, DHKeygen, or DHExchange.
func DefaultParams() Params {
	return Params{Mode: ModeFull}
}

func (p Params) constantTime() bool {
	return p.Mode == ModeFull
}

func toCompressed(b [32]byte) kummer.Compressed {
	var c kummer.Compressed
	copy(c[:], b[:])
	return c
}
