package kummer

import "github.com/lix2ng/qdsv/fe127"

// getK2 evaluates the K2 Rosenhain biquadratic form on (l1,l2), branching
// only on the structurally-exposed tau bit (never on l1/l2's values).
func getK2(l1, l2 fe127.Elem, tau bool) fe127.Elem {
	r := fe127.MulConst(l1, q2)
	r = fe127.Mul(l2, r)
	if tau {
		t := fe127.MulConst(l1, q0)
		r = fe127.Add(r, t)
		t = fe127.MulConst(l2, q1)
		r = fe127.Sub(r, t)
	}
	r = fe127.MulConst(r, q3)
	r = fe127.Add(r, r)
	t := fe127.MulConst(l1, q5)
	t = fe127.Square(t)
	r = fe127.Sub(t, r)
	t = fe127.MulConst(l2, q3)
	t = fe127.Square(t)
	r = fe127.Add(t, r)
	if tau {
		t = fe127.FromUint64(q4)
		t = fe127.Square(t)
		r = fe127.Add(t, r)
	}
	return r
}

// getK3 evaluates the K3 Rosenhain biquadratic form on (l1,l2).
func getK3(l1, l2 fe127.Elem, tau bool) fe127.Elem {
	r := fe127.Square(l1)
	t0 := fe127.Square(l2)
	var t1 fe127.Elem
	if tau {
		one := fe127.One()
		r = fe127.Add(r, one)
		t0 = fe127.Add(t0, one)
		t1 = fe127.Add(r, t0)
	}
	r = fe127.Mul(r, l2)
	r = fe127.MulConst(r, q0)
	t0 = fe127.Mul(t0, l1)
	t0 = fe127.MulConst(t0, q1)
	r = fe127.Sub(r, t0)
	if tau {
		one := fe127.One()
		t1 = fe127.Sub(t1, one)
		t1 = fe127.Sub(t1, one)
		t1 = fe127.MulConst(t1, q2)
		r = fe127.Add(r, t1)
	}
	r = fe127.MulConst(r, q3)
	if tau {
		t0 = fe127.Mul(l1, l2)
		t0 = fe127.MulConst(t0, q6)
		t0 = fe127.MulConst(t0, q7)
		r = fe127.Sub(r, t0)
	}
	return r
}

// getK4 evaluates the K4 Rosenhain biquadratic form on (l1,l2).
func getK4(l1, l2 fe127.Elem, tau bool) fe127.Elem {
	var t fe127.Elem
	if tau {
		t = fe127.MulConst(l2, q0)
		r := fe127.MulConst(l1, q1)
		t = fe127.Sub(t, r)
		r = fe127.FromUint64(q2)
		t = fe127.Add(t, r)
		t = fe127.Mul(t, l1)
		t = fe127.Mul(t, l2)
		t = fe127.MulConst(t, q3)
		t = fe127.Add(t, t)
		r = fe127.MulConst(l1, q3)
		r = fe127.Square(r)
		t = fe127.Sub(r, t)
		r = fe127.MulConst(l2, q5)
		r = fe127.Square(r)
		t = fe127.Add(r, t)
	}
	r := fe127.MulConst(l1, q4)
	r = fe127.Mul(r, l2)
	r = fe127.Square(r)
	if tau {
		r = fe127.Add(r, t)
	}
	return r
}

// tRow computes one row of the T matrix (compress's change of basis).
func tRow(x1, x2, x3, x4 fe127.Elem) fe127.Elem {
	r := fe127.MulConst(x2, khat2)
	t := fe127.MulConst(x3, khat3)
	r = fe127.Add(r, t)
	t = fe127.MulConst(x4, khat4)
	r = fe127.Add(r, t)
	t = fe127.MulConst(x1, khat1)
	r = fe127.Sub(r, t)
	return r
}

func matrixT(p Point) Point {
	return Point{
		X: tRow(p.T, p.Z, p.Y, p.X),
		Y: tRow(p.Z, p.T, p.X, p.Y),
		Z: tRow(p.Y, p.X, p.T, p.Z),
		T: tRow(p.X, p.Y, p.Z, p.T),
	}
}

// tInvRow computes one row of decompress's inverse matrix step.
func tInvRow(x1, x2, x3, x4 fe127.Elem) fe127.Elem {
	r := fe127.Add(x2, x2)
	r = fe127.Sub(r, x1)
	r = fe127.MulConst(r, mu1)
	t := fe127.MulConst(x3, mu3)
	r = fe127.Add(r, t)
	t = fe127.MulConst(x4, mu4)
	r = fe127.Add(r, t)
	return r
}

func matrixTInv(p Point) Point {
	return Point{
		X: tInvRow(p.T, p.Z, p.Y, p.X),
		Y: tInvRow(p.Z, p.T, p.X, p.Y),
		Z: tInvRow(p.Y, p.X, p.T, p.Z),
		T: tInvRow(p.X, p.Y, p.Z, p.T),
	}
}

// Compress encodes a Kummer point as two field elements plus a pair of
// sign bits packed into their top bits.
func Compress(x Point) Compressed {
	t := matrixT(x)

	// tau is true exactly when L3 (t.Z) is nonzero; the naming follows
	// fe127.Zeroness's own 0-means-zero convention.
	tau := fe127.Zeroness(t.Z) != 0

	var l2 fe127.Elem
	switch {
	case tau:
		l2 = fe127.Invert(t.Z)
	case fe127.Zeroness(t.Y) != 0:
		l2 = fe127.Invert(t.Y)
	case fe127.Zeroness(t.X) != 0:
		l2 = fe127.Invert(t.X)
	default:
		l2 = fe127.Invert(t.T)
	}

	t.T = fe127.Mul(t.T, l2)
	l1 := fe127.Mul(t.X, l2)
	l2 = fe127.Mul(t.Y, l2)

	k2l4 := fe127.Mul(getK2(l1, l2, tau), t.T)
	k3 := getK3(l1, l2, tau)
	diff := fe127.Sub(k2l4, k3)

	l1 = fe127.Freeze(l1)
	l2 = fe127.Freeze(l2)
	diff = fe127.Freeze(diff)

	var out Compressed
	b1 := fe127.BytesLE(l1)
	b2 := fe127.BytesLE(l2)
	copy(out[0:16], b1[:])
	copy(out[16:32], b2[:])
	if tau {
		out[15] |= 0x80
	}
	diffBytes := fe127.BytesLE(diff)
	if diffBytes[0]&1 != 0 {
		out[31] |= 0x80
	}
	return out
}

// Decompress recovers a Kummer point from its compressed encoding. It
// returns (point, false) when the encoding is structurally invalid.
func Decompress(c Compressed) (Point, bool) {
	var l1b, l2b [16]byte
	copy(l1b[:], c[0:16])
	copy(l2b[:], c[16:32])

	tau := (l1b[15] & 0x80) != 0
	sigma := (l2b[15] & 0x80) != 0
	l1b[15] &= 0x7f
	l2b[15] &= 0x7f

	l1 := fe127.FromBytesLE(l1b[:])
	l2 := fe127.FromBytesLE(l2b[:])

	// A zero (l1, l2) pair is valid only as the identity, with both tag
	// bits clear.
	if fe127.Zeroness(l1) == 0 && fe127.Zeroness(l2) == 0 && (tau || sigma) {
		return Point{}, false
	}

	var sigmaBit uint
	if sigma {
		sigmaBit = 1
	}

	k2 := getK2(l1, l2, tau)
	k3 := getK3(l1, l2, tau)
	k4 := getK4(l1, l2, tau)

	var tX, tY, tZ, tT fe127.Elem

	if fe127.Zeroness(k2) == 0 {
		k3f := fe127.Freeze(k3)
		if fe127.Zeroness(k3f) == 0 {
			if fe127.Zeroness(l1) != 0 || fe127.Zeroness(l2) != 0 || tau || sigma {
				return Point{}, false
			}
			tT = fe127.One()
		} else {
			k3Low := fe127.BytesLE(k3f)[0]&1 != 0
			if sigma != k3Low {
				tX = fe127.Mul(k3f, l1)
				tX = fe127.Add(tX, tX)
				tY = fe127.Mul(k3f, l2)
				tY = fe127.Add(tY, tY)
				if tau {
					tZ = fe127.Add(k3f, k3f)
				}
				tT = k4
			} else {
				return Point{}, false
			}
		}
	} else {
		delta := fe127.Square(k3)
		delta = fe127.Sub(delta, fe127.Mul(k2, k4))
		root, ok := fe127.HasSqrt(delta, sigmaBit)
		if !ok {
			return Point{}, false
		}
		tT = fe127.Add(k3, root)
		if tau {
			tZ = k2
		}
		tX = fe127.Mul(k2, l1)
		tY = fe127.Mul(k2, l2)
	}

	return matrixTInv(Point{X: tX, Y: tY, Z: tZ, T: tT}), true
}
