package fe127

// PowMinHalf raises x to the power 2^126 + 2^125 - 2 via a fixed
// 11-multiply, 125-square addition chain. It is not used on its own;
// Invert and HasSqrt each compose it with a couple of extra operations to
// reach the exponent they actually need (p-2, and for a square delta the
// equivalent of (p+1)/4, respectively). The
// chain below is transcribed operation-for-operation from the reference
// implementation rather than re-derived, since a single transposed line
// silently produces a different (wrong) exponent with no simple way to
// notice short of testing against known values.
func PowMinHalf(x Elem) Elem {
	x2 := Square(x)         // x^2
	x3 := Mul(x2, x)        // x^3 = 2^2-1
	x6 := Square(x3)        // 2^3-2
	x6 = Square(x6)         // 2^4-4... folded into the next line
	x3 = Mul(x6, x3)        // 2^4-1
	x6 = Square(x3)         // 2^5-2
	x6 = Mul(x6, x)         // 2^5-1
	r := Square(x6)         // 2^6-2
	for i := 0; i < 4; i++ {
		r = Square(r) // 2^10-2^5
	}
	x6 = Mul(r, x6) // 2^10-1
	r = Square(x6)  // 2^11-2
	for i := 0; i < 9; i++ {
		r = Square(r) // 2^20-2^10
	}
	x6 = Mul(r, x6) // 2^20-1
	r = Square(x6)  // 2^21-2
	for i := 0; i < 19; i++ {
		r = Square(r) // 2^40-2^20
	}
	x6 = Mul(r, x6) // 2^40-1
	r = Square(x6)  // 2^41-2
	for i := 0; i < 39; i++ {
		r = Square(r) // 2^80-2^40
	}
	r = Mul(r, x6) // 2^80-1
	for i := 0; i < 40; i++ {
		r = Square(r) // 2^120-2^40
	}
	r = Mul(r, x6) // 2^120-1
	for i := 0; i < 4; i++ {
		r = Square(r) // 2^124-2^4
	}
	r = Mul(r, x3)  // 2^124-1
	r = Square(r)   // 2^125-2
	x6 = Mul(r, x2) // 2^125
	x6 = Square(x6) // 2^126
	r = Mul(r, x6)
	return r
}

// Invert returns x^-1 mod p via Fermat's little theorem, x^(p-2),
// composed from PowMinHalf plus two multiplications.
func Invert(x Elem) Elem {
	r := Square(x)
	r = PowMinHalf(r)
	t := Mul(r, x)
	r = Mul(r, t)
	return r
}

// HasSqrt attempts to recover a square root of delta whose low bit
// matches sigma. It reports (root, true) on success. On failure (delta is
// not a quadratic residue) it returns the zero value and false; callers
// must reject the surrounding decompression in that case, matching
// fe1271_has_sqrt's "return 1" error convention.
func HasSqrt(delta Elem, sigma uint) (Elem, bool) {
	r := PowMinHalf(delta)
	r = Mul(r, delta)
	t := Square(r)
	t = Sub(t, delta)
	if Zeroness(t) != 0 {
		return Elem{}, false
	}
	r = Freeze(r)
	if (r.v[0] & 1) != uint64(sigma&1) {
		// The only root of zero is zero, whose low bit is 0.
		if r.v.IsZero() {
			return Elem{}, false
		}
		r = Neg(r)
	}
	return r, true
}
