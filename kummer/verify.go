package kummer

import "github.com/lix2ng/qdsv/fe127"

// hTransform applies fe1271_H: negate X, Hadamard the whole point, then
// negate the new T. xDBLADD uses it for both of its Hadamard steps, on
// points whose X coordinate is carried negated. Check, whose inputs are
// ordinary points, uses the plain fe127.Hdmrd instead.
func hTransform(p *Point) {
	p.X = fe127.Neg(p.X)
	p.X, p.Y, p.Z, p.T = fe127.Hdmrd(p.X, p.Y, p.Z, p.T)
	p.T = fe127.Neg(p.T)
}

// dot computes x0*y0 + x1*y1 + x2*y2 + x3*y3.
func dot(x0, x1, x2, x3, y0, y1, y2, y3 fe127.Elem) fe127.Elem {
	r := fe127.Mul(x0, y0)
	r = fe127.Add(r, fe127.Mul(x1, y1))
	r = fe127.Add(r, fe127.Mul(x2, y2))
	r = fe127.Add(r, fe127.Mul(x3, y3))
	return r
}

// dotConst computes x0*k1 - x1*k2 - x2*k3 + x3*k4 for the fixed
// dk1..dk4 constants.
func dotConst(x0, x1, x2, x3 fe127.Elem) fe127.Elem {
	r := fe127.MulConst(x0, dk1)
	r = fe127.Sub(r, fe127.MulConst(x1, dk2))
	r = fe127.Sub(r, fe127.MulConst(x2, dk3))
	r = fe127.Add(r, fe127.MulConst(x3, dk4))
	return r
}

// biiValues computes the four diagonal biquadratic forms (B11,B22,B33,B44)
// for a pair of uncompressed points.
func biiValues(sP, hQ Point) Point {
	t0 := Point{X: fe127.Square(sP.X), Y: fe127.Square(sP.Y), Z: fe127.Square(sP.Z), T: fe127.Square(sP.T)}
	r := Point{X: fe127.Square(hQ.X), Y: fe127.Square(hQ.Y), Z: fe127.Square(hQ.Z), T: fe127.Square(hQ.T)}

	t0.X = fe127.MulConst(t0.X, ehat[0])
	t0.Y = fe127.MulConst(t0.Y, ehat[1])
	t0.Z = fe127.MulConst(t0.Z, ehat[2])
	t0.T = fe127.MulConst(t0.T, ehat[3])
	r.X = fe127.MulConst(r.X, ehat[0])
	r.Y = fe127.MulConst(r.Y, ehat[1])
	r.Z = fe127.MulConst(r.Z, ehat[2])
	r.T = fe127.MulConst(r.T, ehat[3])

	t0.X = fe127.Neg(t0.X)
	r.X = fe127.Neg(r.X)

	var t1 Point
	t1.X = dot(t0.X, t0.Y, t0.Z, t0.T, r.X, r.Y, r.Z, r.T)
	t1.Y = dot(t0.X, t0.Y, t0.Z, t0.T, r.Y, r.X, r.T, r.Z)
	t1.Z = dot(t0.X, t0.Z, t0.Y, t0.T, r.Z, r.X, r.T, r.Y)
	t1.T = dot(t0.X, t0.T, t0.Y, t0.Z, r.T, r.X, r.Z, r.Y)

	r.X = dotConst(t1.X, t1.Y, t1.Z, t1.T)
	r.Y = dotConst(t1.Y, t1.X, t1.T, t1.Z)
	r.Z = dotConst(t1.Z, t1.T, t1.X, t1.Y)
	r.T = dotConst(t1.T, t1.Z, t1.Y, t1.X)

	r.X = fe127.MulConst(r.X, muhat[0])
	r.Y = fe127.MulConst(r.Y, muhat[1])
	r.Z = fe127.MulConst(r.Z, muhat[2])
	r.T = fe127.MulConst(r.T, muhat[3])
	r.X = fe127.Neg(r.X)
	return r
}

// bijValue computes the off-diagonal biquadratic form B_ij given a
// permutation (P1..P4) of one point's coordinates, a matching permutation
// (Q1..Q4) of the other's, and the (c1..c4) constant permutation that
// pair {i,j} selects.
func bijValue(p1, p2, p3, p4, q1, q2, q3, q4 fe127.Elem, c1, c2, c3, c4 uint16) fe127.Elem {
	r := fe127.Mul(p1, p2)
	tX := fe127.Mul(q1, q2)
	tY := fe127.Mul(p3, p4)
	r = fe127.Sub(r, tY)
	tZ := fe127.Mul(q3, q4)
	tX = fe127.Sub(tX, tZ)
	r = fe127.Mul(r, tX)
	tX = fe127.Mul(tY, tZ)
	r = fe127.MulConst(r, c3)
	r = fe127.MulConst(r, c4)
	tY = fe127.SumConst(c3, c4, c1, c2)
	tX = fe127.Mul(tX, tY)
	r = fe127.Sub(tX, r)
	r = fe127.MulConst(r, c1)
	r = fe127.MulConst(r, c2)
	tY = fe127.SumConst(c2, c4, c1, c3)
	r = fe127.Mul(r, tY)
	tY = fe127.SumConst(c2, c3, c1, c4)
	r = fe127.Mul(r, tY)
	return r
}

// quad tests BjjR1^2 - 2*C*BijR1R2 + BiiR2^2 == 0, returning true when the
// identity holds (meaning this particular i/j pairing is consistent with
// R = sP (+/-) hQ).
func quad(bij, bjj, bii, r1, r2 fe127.Elem) bool {
	tX := fe127.Square(r1)
	tX = fe127.Mul(bjj, tX)
	tY := fe127.Mul(r1, r2)
	tY = fe127.Mul(bij, tY)
	tY = fe127.Mul(quadC, tY)
	tY = fe127.Add(tY, tY)
	tX = fe127.Sub(tX, tY)
	tY = fe127.Square(r2)
	tY = fe127.Mul(bii, tY)
	tX = fe127.Add(tX, tY)
	return fe127.Zeroness(tX) == 0
}

// Check verifies that the decompressed point represented by xr equals
// sP (+/-) hQ on the Kummer surface, without ever reconstructing either
// point explicitly — exactly the property that lets qDSA's Verify skip
// point recovery. sP, hQ and the decompressed R are Hadamard-transformed
// before the forms are evaluated; sP and hQ are taken by value, so the
// caller's points are left unchanged.
func Check(sP, hQ Point, xr Compressed) bool {
	sP.X, sP.Y, sP.Z, sP.T = fe127.Hdmrd(sP.X, sP.Y, sP.Z, sP.T)
	hQ.X, hQ.Y, hQ.Z, hQ.T = fe127.Hdmrd(hQ.X, hQ.Y, hQ.Z, hQ.T)
	bii := biiValues(sP, hQ)

	r, ok := Decompress(xr)
	if !ok {
		return false
	}
	r.X, r.Y, r.Z, r.T = fe127.Hdmrd(r.X, r.Y, r.Z, r.T)

	// Each quad call returns true when its biquadratic identity holds.
	// The reference ORs the six *failures* (v |= quad(...), where quad
	// returns 0 on a hold) and accepts iff v == 0, i.e. only when ALL
	// six hold. ANDing the six holds here is the direct equivalent.
	accept := true

	b12 := bijValue(sP.X, sP.Y, sP.Z, sP.T, hQ.X, hQ.Y, hQ.Z, hQ.T, muhat[0], muhat[1], muhat[2], muhat[3])
	accept = accept && quad(b12, bii.Y, bii.X, r.X, r.Y)

	b13 := bijValue(sP.X, sP.Z, sP.Y, sP.T, hQ.X, hQ.Z, hQ.Y, hQ.T, muhat[0], muhat[2], muhat[1], muhat[3])
	accept = accept && quad(b13, bii.Z, bii.X, r.X, r.Z)

	b14 := bijValue(sP.X, sP.T, sP.Y, sP.Z, hQ.X, hQ.T, hQ.Y, hQ.Z, muhat[0], muhat[3], muhat[1], muhat[2])
	accept = accept && quad(b14, bii.T, bii.X, r.X, r.T)

	b23 := bijValue(sP.Y, sP.Z, sP.X, sP.T, hQ.Y, hQ.Z, hQ.X, hQ.T, muhat[1], muhat[2], muhat[0], muhat[3])
	b23 = fe127.Neg(b23)
	accept = accept && quad(b23, bii.Z, bii.Y, r.Y, r.Z)

	b24 := bijValue(sP.Y, sP.T, sP.X, sP.Z, hQ.Y, hQ.T, hQ.X, hQ.Z, muhat[1], muhat[3], muhat[0], muhat[2])
	b24 = fe127.Neg(b24)
	accept = accept && quad(b24, bii.T, bii.Y, r.Y, r.T)

	b34 := bijValue(sP.Z, sP.T, sP.X, sP.Y, hQ.Z, hQ.T, hQ.X, hQ.Y, muhat[2], muhat[3], muhat[0], muhat[1])
	b34 = fe127.Neg(b34)
	accept = accept && quad(b34, bii.T, bii.Z, r.Z, r.T)

	return accept
}
