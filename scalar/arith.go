package scalar

import "math/bits"

// mul128 computes the exact 128x128->256-bit product of two 4-word
// (little-endian 32-bit limb) operands. Every loop bound below is fixed
// by position (i, j, k), never by a carry value or operand content, so
// the instruction trace is identical regardless of which secret scalar
// is being multiplied — this is the building block large_mul's
// 128-bit-half schoolbook decomposition is built from.
func mul128(x, y [4]uint32) [8]uint32 {
	var r [8]uint32
	for i := 0; i < 4; i++ {
		var carry uint32
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul32(x[i], y[j])
			sum, c1 := bits.Add32(lo, r[i+j], 0)
			sum, c2 := bits.Add32(sum, carry, 0)
			r[i+j] = sum
			carry = hi + c1 + c2
		}
		for k := i + 4; k < 8; k++ {
			sum, c := bits.Add32(r[k], carry, 0)
			r[k] = sum
			carry = c
		}
	}
	return r
}

// largeAddAt adds the 8-word value y into the 16-word buffer x at word
// offset os, propagating carry out through the remainder of x. os is
// always a compile-time-known call site constant (0, 4, or 8), so the
// split between the two loops below is structural, not data-dependent.
func largeAddAt(x *[16]uint32, y *[8]uint32, os int) {
	var carry uint32
	for i := 0; i < 8; i++ {
		s, c := bits.Add32(x[os+i], y[i], carry)
		x[os+i] = s
		carry = c
	}
	for i := os + 8; i < 16; i++ {
		s, c := bits.Add32(x[i], 0, carry)
		x[i] = s
		carry = c
	}
}

// largeMul computes the exact 256x256->512-bit product of x and y by
// splitting each into 128-bit halves and summing the four cross
// products at the appropriate word offsets (schoolbook multiplication,
// base 2^128).
func largeMul(x, y *[8]uint32) [16]uint32 {
	var xl, xh, yl, yh [4]uint32
	copy(xl[:], x[0:4])
	copy(xh[:], x[4:8])
	copy(yl[:], y[0:4])
	copy(yh[:], y[4:8])

	var r [16]uint32
	ll := mul128(xl, yl)
	copy(r[0:8], ll[:])

	lh := mul128(xl, yh)
	largeAddAt(&r, &lh, 4)

	hl := mul128(xh, yl)
	largeAddAt(&r, &hl, 4)

	hh := mul128(xh, yh)
	largeAddAt(&r, &hh, 8)

	return r
}

// largeRed reduces a 512-bit value modulo N (250 bits) using the
// precomputed folding constants l and l6. Each pass multiplies the
// current high part by a folding constant and adds the result back into
// the low 256 bits, shrinking the high part a little further each time;
// the final two passes additionally fold the handful of bits that spill
// past N's 250-bit width into the next pass's high part, mirroring the
// reference reduction's explicit 6-bit and 1-bit carries.
func largeRed(x *[16]uint32) [8]uint32 {
	r := *x

	var hi [8]uint32
	for iter := 0; iter < 4; iter++ {
		copy(hi[:], r[8:16])
		t := largeMul(&hi, &l6)
		copy(r[8:16], t[8:16])
		lo := [8]uint32{t[0], t[1], t[2], t[3], t[4], t[5], t[6], t[7]}
		largeAddAt(&r, &lo, 0)
	}

	r[8] = (r[8] << 6) | ((r[7] & 0xfc000000) >> 26)
	r[7] &= 0x03ffffff
	copy(hi[:], r[8:16])
	t := largeMul(&hi, &l)
	copy(r[8:16], t[8:16])
	lo := [8]uint32{t[0], t[1], t[2], t[3], t[4], t[5], t[6], t[7]}
	largeAddAt(&r, &lo, 0)

	r[8] = (r[7] & 0x04000000) >> 26
	r[7] &= 0x03ffffff
	copy(hi[:], r[8:16])
	t = largeMul(&hi, &l)
	r[8] = 0
	lo = [8]uint32{t[0], t[1], t[2], t[3], t[4], t[5], t[6], t[7]}
	largeAddAt(&r, &lo, 0)

	var out [8]uint32
	copy(out[:], r[0:8])

	// The folds leave a value below 2N that can still be at least N; one
	// masked subtraction of N brings it into [0, N).
	var sub [8]uint32
	var borrow uint32
	for i := 0; i < 8; i++ {
		sub[i], borrow = bits.Sub32(out[i], n[i], borrow)
	}
	mask := borrow - 1
	for i := 0; i < 8; i++ {
		out[i] = (sub[i] & mask) | (out[i] &^ mask)
	}
	return out
}

// largeNeg returns N-x as an 8-word value, via a fixed borrow-propagating
// subtraction chain (math/bits.Sub32 at every word regardless of whether
// an earlier word actually borrowed).
func largeNeg(x *[8]uint32) [8]uint32 {
	var r [8]uint32
	var borrow uint32
	for i := 0; i < 8; i++ {
		d, b := bits.Sub32(n[i], x[i], borrow)
		r[i] = d
		borrow = b
	}
	return r
}
