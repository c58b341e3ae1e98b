package kummer

import "github.com/lix2ng/qdsv/fe127"

// xDBLADD performs a simultaneous differential doubling of xp and
// pseudo-addition of xq, given their difference xd. This is the single
// group-law step every ladder iteration repeats; it touches no secret
// data through a branch, only through arithmetic, so it is safe to share
// between the constant-time and variable-time ladder variants (the
// variable-time one only ever runs on public scalars, but the step
// itself carries no scalar-dependent branching either way).
//
// xp and xq arrive with their X coordinate negated, and xp leaves that
// way. Both Hadamard steps go through hTransform, whose leading X
// negation undoes the input convention the first time and supplies the
// sign of ehat's first entry the second time; the T negation it also
// applies is squared away.
func xDBLADD(xp, xq *Point, xd Wrapped) {
	hTransform(xq)
	hTransform(xp)

	xq.X = fe127.Mul(xq.X, xp.X)
	xq.Y = fe127.Mul(xq.Y, xp.Y)
	xq.Z = fe127.Mul(xq.Z, xp.Z)
	xq.T = fe127.Mul(xq.T, xp.T)

	xp.X = fe127.Square(xp.X)
	xp.Y = fe127.Square(xp.Y)
	xp.Z = fe127.Square(xp.Z)
	xp.T = fe127.Square(xp.T)

	xq.X = fe127.MulConst(xq.X, ehat[0])
	xq.Y = fe127.MulConst(xq.Y, ehat[1])
	xq.Z = fe127.MulConst(xq.Z, ehat[2])
	xq.T = fe127.MulConst(xq.T, ehat[3])

	xp.X = fe127.MulConst(xp.X, ehat[0])
	xp.Y = fe127.MulConst(xp.Y, ehat[1])
	xp.Z = fe127.MulConst(xp.Z, ehat[2])
	xp.T = fe127.MulConst(xp.T, ehat[3])

	hTransform(xq)
	hTransform(xp)

	xq.X = fe127.Square(xq.X)
	xq.Y = fe127.Square(xq.Y)
	xq.Z = fe127.Square(xq.Z)
	xq.T = fe127.Square(xq.T)

	xp.X = fe127.Square(xp.X)
	xp.Y = fe127.Square(xp.Y)
	xp.Z = fe127.Square(xp.Z)
	xp.T = fe127.Square(xp.T)

	xq.Y = fe127.Mul(xq.Y, xd.Y)
	xq.Z = fe127.Mul(xq.Z, xd.Z)
	xq.T = fe127.Mul(xq.T, xd.T)

	xp.X = fe127.MulConst(xp.X, econs[0])
	xp.Y = fe127.MulConst(xp.Y, econs[1])
	xp.Z = fe127.MulConst(xp.Z, econs[2])
	xp.T = fe127.MulConst(xp.T, econs[3])
}

// condSwapPoints swaps xp and xq component-wise under a masked XOR when
// swap is true, never via a branch — the point-level building block the
// secret-scalar ladder composes from fe127.CondSwap.
func condSwapPoints(swap bool, xp, xq *Point) {
	xp.X, xq.X = fe127.CondSwap(swap, xp.X, xq.X)
	xp.Y, xq.Y = fe127.CondSwap(swap, xp.Y, xq.Y)
	xp.Z, xq.Z = fe127.CondSwap(swap, xp.Z, xq.Z)
	xp.T, xq.T = fe127.CondSwap(swap, xp.T, xq.T)
}

// scalarBit extracts bit i (0 = least significant) of a little-endian
// scalar byte array.
func scalarBit(n []byte, i int) int {
	return int((n[i>>3] >> uint(i&7)) & 1)
}

// ladder runs the 251-step (bits 250..0) Montgomery-style differential
// ladder computing [n]xd from the wrapped difference xd. xp is reset to
// the identity, carried with its X coordinate negated as xDBLADD expects;
// xq must already hold the unwrapped form of xd on entry (the ladder is
// a textbook differential addition chain where the "base" point is
// carried both wrapped, as the fixed xd, and unwrapped, as the evolving
// xq). branchy selects the swap strategy per call: the masked-XOR swap
// when false, a plain branch on the swap bit when true. qdsa.Verify
// always asks for the branchy swap, since its scalars are public; the
// other scheme functions follow their Params.
func ladder(xp, xq *Point, xd Wrapped, n []byte, branchy bool) {
	*xp = Identity()
	xp.X = fe127.Neg(xp.X)

	prevBit := 0
	for i := 250; i >= 0; i-- {
		bit := scalarBit(n, i)
		swap := bit ^ prevBit
		prevBit = bit

		xq.X = fe127.Neg(xq.X)

		if branchy {
			if swap != 0 {
				*xp, *xq = *xq, *xp
			}
		} else {
			condSwapPoints(swap != 0, xp, xq)
		}

		xDBLADD(xp, xq, xd)
	}

	xp.X = fe127.Neg(xp.X)

	if branchy {
		if prevBit != 0 {
			*xp, *xq = *xq, *xp
		}
	} else {
		condSwapPoints(prevBit != 0, xp, xq)
	}
}

// Ladder runs the differential ladder from an already-unwrapped starting
// point xqStart (the shape Verify and DHExchange need, since they already
// have an unwrapped point on hand from a prior decompress and must not
// redo that work). constantTime selects the masked-XOR swap; false
// selects the cheaper branchy swap, whose timing depends on n and which
// therefore suits only public scalars.
func Ladder(xd Wrapped, xqStart Point, n []byte, constantTime bool) (xp, xq Point) {
	xq = xqStart
	ladder(&xp, &xq, xd, n, !constantTime)
	return
}

// LadderFromDifference unwraps xd itself to seed xq, the shape every
// call site other than Verify/DHExchange uses (keypair generation and
// dh_keygen start from nothing but a wrapped difference).
func LadderFromDifference(xd Wrapped, n []byte, constantTime bool) (xp, xq Point) {
	return Ladder(xd, Unwrap(xd), n, constantTime)
}

// LadderBase250 runs the ladder starting from the fixed base point, the
// operation keypair generation and dh_keygen use to turn a secret scalar
// into a public point.
func LadderBase250(n []byte, constantTime bool) Point {
	xp, _ := LadderFromDifference(baseWrapped, n, constantTime)
	return xp
}
