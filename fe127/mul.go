package fe127

import "github.com/holiman/uint256"

// Mul returns x*y mod p, unreduced. The 128x128->256-bit product is exact
// (uint256.Int.Mul never truncates when both operands are below 2^128,
// since the true product is below 2^256), and the straight-line fold back
// to 128 bits costs nothing data-dependent: no branch or loop bound here
// depends on the operand values.
func Mul(x, y Elem) Elem {
	prod := new(uint256.Int).Mul(&x.v, &y.v)
	return Elem{v: reduceFold(prod)}
}

// Square returns x*x mod p, unreduced.
func Square(x Elem) Elem {
	return Mul(x, x)
}

// MulConst returns x*c mod p, unreduced, for a small constant c (the
// Rosenhain/biquadratic constants used throughout kummer are all 16-bit
// values).
func MulConst(x Elem, c uint16) Elem {
	cc := uint256.NewInt(uint64(c))
	prod := new(uint256.Int).Mul(&x.v, cc)
	return Elem{v: reduceFold(prod)}
}

// SumConst computes c1*c2 + c3*c4 as a field element built entirely from
// four small constants (no field-element operands). This mirrors the
// original fe1271_sum helper used by bij_value, which builds a constant
// field element this way and then multiplies it into the running result.
func SumConst(c1, c2, c3, c4 uint16) Elem {
	t := MulConst(FromUint64(uint64(c1)), c2)
	r := MulConst(FromUint64(uint64(c3)), c4)
	return Add(r, t)
}
