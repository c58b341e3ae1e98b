// Package kummer implements point operations on the Gaudry-Schost genus-2
// Kummer surface this module's qDSA scheme signs over: the pseudo-group
// law (xDBLADD), the Montgomery-style ladder in both its constant-time
// (secret-scalar) and variable-time (public-scalar, verify-only) forms,
// wrap/unwrap between the full four-coordinate and three-coordinate
// wrapped representations, point compression/decompression, and the
// biquadratic verification forms the signature scheme's Verify uses in
// place of point reconstruction.
package kummer

import "github.com/lix2ng/qdsv/fe127"

// Point is a Kummer surface point in its full four-coordinate projective
// representation (X,Y,Z,T). The layout is significant: every operation in
// this package indexes coordinates in this exact order, mirroring the
// original engine's kpoint, which explicitly forbids reordering the
// fields.
type Point struct {
	X, Y, Z, T fe127.Elem
}

// Wrapped is a Kummer point normalized by its (implicit, always-1) first
// coordinate: three field elements suffice once X is fixed to 1. Distinct
// from Point (per spec.md's Design Notes recommendation to use separate
// named types rather than reusing one layout for two meanings).
type Wrapped struct {
	Y, Z, T fe127.Elem
}

// Compressed is a 32-byte compressed point encoding: two fe127 elements
// (l1, l2) plus one packed bit in the top bit of each element's last
// byte (tau in l1's, sigma in l2's).
type Compressed [32]byte

// Identity returns the Kummer surface's distinguished identity point,
// (-mu1, mu2, mu3, mu4). It compresses to 32 zero bytes, and every
// ladder starts from it (with X negated) before the first doubling.
func Identity() Point {
	return Point{
		X: fe127.Neg(fe127.FromUint64(uint64(mu1))),
		Y: fe127.FromUint64(uint64(mu2)),
		Z: fe127.FromUint64(uint64(mu3)),
		T: fe127.FromUint64(uint64(mu4)),
	}
}
