package fe127

// CondSwap conditionally swaps a and b using a masked XOR rather than a
// branch, so the instruction trace does not depend on swap — the
// technique the secret-scalar ladder's point-level conditional swap is
// built from.
func CondSwap(swap bool, a, b Elem) (Elem, Elem) {
	mask := allOnesIf(swap)
	newA := cselect(mask, &b.v, &a.v)
	newB := cselect(mask, &a.v, &b.v)
	return Elem{v: newA}, Elem{v: newB}
}
