package kummer

import "github.com/lix2ng/qdsv/fe127"

// Unwrap recovers the full four-coordinate projective point from its
// wrapped (X implicitly 1) form.
func Unwrap(w Wrapped) Point {
	t := fe127.Mul(w.Y, w.Z)
	z := fe127.Mul(w.Y, w.T)
	y := fe127.Mul(w.Z, w.T)
	x := fe127.Mul(t, w.T)
	return Point{X: x, Y: y, Z: z, T: t}
}

// Wrap normalizes p by its X coordinate, returning (X/Y, X/Z, X/T). It
// assumes Y, Z, and T are all nonzero (the identity qualifies); if one of
// them is zero the inversion yields zero and so does every returned
// coordinate.
func Wrap(p Point) Wrapped {
	w0 := fe127.Mul(p.Y, p.Z)
	w1 := fe127.Mul(w0, p.T)
	w2 := fe127.Invert(w1)
	w2 = fe127.Mul(w2, p.X)
	w3 := fe127.Mul(w2, p.T)
	return Wrapped{
		Y: fe127.Mul(w3, p.Z),
		Z: fe127.Mul(w3, p.Y),
		T: fe127.Mul(w0, w2),
	}
}
