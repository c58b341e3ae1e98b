// Package scalar implements arithmetic modulo N, the 250-bit order of the
// Kummer subgroup this module's signatures and Diffie-Hellman exchange
// operate over.
//
// The internal reduction chain (largeMul/largeRed/largeNeg) is hand-rolled
// against fixed-width word arrays rather than built on a general-purpose
// bignum, because it runs on secret scalars (a signature's private key
// component, a DH private scalar) and must not take a data-dependent code
// path the way a division-based reduction would. Scalar's byte encoding
// and decoding use encoding/binary; the only use of uint256.Int is the
// canonical-range check IsCanonical, a comparison for public data.
package scalar

import (
	"encoding/binary"

	"github.com/holiman/uint256"
)

// Scalar is a 250-bit value modulo N, stored as eight little-endian
// 32-bit words (the layout the reduction chain operates on directly).
type Scalar [8]uint32

// Zero is the additive identity.
var Zero = Scalar{}

// wordsToUint256 and back convert between Scalar's word layout and
// uint256.Int, used only by the public, non-secret-path helpers below.
func wordsToUint256(w [8]uint32) uint256.Int {
	var b [32]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(b[i*4:i*4+4], w[i])
	}
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = b[31-i]
	}
	var u uint256.Int
	u.SetBytes(be[:])
	return u
}

// Reduce32 reduces the 256-bit little-endian value x modulo N, mirroring
// scalar_get32: the 32-byte input is zero-extended to 64 bytes and folded
// down exactly the way a 512-bit Bob Jr. digest is.
func Reduce32(x *[32]byte) Scalar {
	var words [8]uint32
	for i := 0; i < 8; i++ {
		words[i] = binary.LittleEndian.Uint32(x[i*4 : i*4+4])
	}
	var wide [16]uint32
	copy(wide[0:8], words[:])
	return Scalar(largeRed(&wide))
}

// ReduceWide reduces a 512-bit little-endian value modulo N. This is the
// operation applied directly to a Bob Jr. digest's full 64-byte state
// (scalar_get_hrqm and the nonce derivation in Sign both consume a full
// sponge digest this way, without the zero-extension Reduce32 needs).
func ReduceWide(x *[64]byte) Scalar {
	var wide [16]uint32
	for i := 0; i < 16; i++ {
		wide[i] = binary.LittleEndian.Uint32(x[i*4 : i*4+4])
	}
	return Scalar(largeRed(&wide))
}

// Bytes encodes s as 32 little-endian bytes.
func (s Scalar) Bytes() [32]byte {
	var out [32]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint32(out[i*4:i*4+4], s[i])
	}
	return out
}

// Negate returns N-s.
func Negate(s Scalar) Scalar {
	arr := [8]uint32(s)
	return Scalar(largeNeg(&arr))
}

// Ops computes s = r - h*d mod N, the signature scalar combination step
// (scalar_ops). d is the signer's secret scalar; this path never touches
// uint256's division or the public encode/decode helpers.
func Ops(r, h, d Scalar) Scalar {
	hArr := [8]uint32(h)
	dArr := [8]uint32(d)
	prod := largeMul(&hArr, &dArr)
	hd := largeRed(&prod) // h*d mod N, 8 words

	neg := largeNeg(&hd) // N - h*d mod N, 8 words

	var wide [16]uint32
	copy(wide[0:8], neg[:])
	rArr := [8]uint32(r)
	largeAddAt(&wide, &rArr, 0)
	return Scalar(largeRed(&wide))
}

// IsCanonical reports whether b, parsed as a little-endian 256-bit
// integer, is strictly less than N. It relies on the variable-time
// uint256.Cmp, so it suits public data only. No function in this module
// calls it; Verify reduces an incoming s without this check.
func IsCanonical(b [32]byte) bool {
	var be [32]byte
	for i := 0; i < 32; i++ {
		be[i] = b[31-i]
	}
	var u uint256.Int
	u.SetBytes(be[:])
	nu := wordsToUint256(n)
	return u.Cmp(&nu) < 0
}
