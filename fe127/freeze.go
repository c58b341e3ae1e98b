package fe127

import "github.com/holiman/uint256"

// allOnesIf returns a 64-bit all-ones mask when cond is true, all-zeros
// otherwise, without branching on cond in the generated code path (the
// Go compiler may still branch on a bool-to-int conversion on some
// targets, but the arithmetic that consumes the mask below never
// branches on secret data).
func allOnesIf(cond bool) uint64 {
	var m uint64
	if cond {
		m = ^uint64(0)
	}
	return m
}

// cselect returns b with a substituted in wherever cond's mask is set,
// word by word, mirroring the XOR-masked-swap technique the original
// ladder uses for ct_swap: r[i] = b[i] ^ (mask & (a[i] ^ b[i])).
func cselect(mask uint64, a, b *uint256.Int) uint256.Int {
	var r uint256.Int
	for i := 0; i < 4; i++ {
		r[i] = b[i] ^ (mask & (a[i] ^ b[i]))
	}
	return r
}

// Freeze reduces x to its canonical representative in [0, p), the only
// operation in this package that does so. An unreduced input is at most
// 2^128-1, which exceeds p by at most p+1, so at most two conditional
// subtractions of p are ever needed (mirroring fe1271_freeze, which
// handles both the ordinary overflow case and the x=p dual representation
// of zero).
func Freeze(x Elem) Elem {
	t := x.v
	for i := 0; i < 2; i++ {
		diff := new(uint256.Int).Sub(&t, &p)
		ge := t.Cmp(&p) >= 0
		t = cselect(allOnesIf(ge), diff, &t)
	}
	return Elem{v: t}
}

// Zeroness reports whether x is congruent to 0 mod p: it returns 0 if so,
// 1 otherwise. Unlike a plain boolean, this mirrors fe1271_zeroness's
// return convention, which every call site in kummer and qdsa relies on
// directly (e.g. as a branch selector alongside tau/sigma bits).
func Zeroness(x Elem) int {
	f := Freeze(x)
	if f.v.IsZero() {
		return 0
	}
	return 1
}
