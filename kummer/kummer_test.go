package kummer

import (
	"testing"

	"github.com/lix2ng/qdsv/fe127"
)

func TestUnwrapWrapRoundTrip(t *testing.T) {
	n := make([]byte, 32)
	n[0] = 0x09
	n[16] = 0x11
	p := LadderBase250(n, true)

	w := Wrap(p)
	back := Unwrap(w)
	w2 := Wrap(back)

	if fe127.Freeze(w.Y) != fe127.Freeze(w2.Y) ||
		fe127.Freeze(w.Z) != fe127.Freeze(w2.Z) ||
		fe127.Freeze(w.T) != fe127.Freeze(w2.T) {
		t.Fatalf("wrap(unwrap(wrap(p))) != wrap(p)")
	}
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	n := make([]byte, 32)
	for i := range n {
		n[i] = byte(i*7 + 3)
	}
	p := LadderBase250(n, true)

	c := Compress(p)
	back, ok := Decompress(c)
	if !ok {
		t.Fatalf("decompress of a freshly compressed point failed")
	}

	// Compression is only projective-equality-preserving: re-compress
	// the decompressed point and compare the encodings instead of the
	// raw coordinates.
	c2 := Compress(back)
	if c != c2 {
		t.Fatalf("compress(decompress(compress(p))) != compress(p)\n got  %x\n want %x", c2, c)
	}
}

func TestLadderZeroScalarIsIdentity(t *testing.T) {
	n := make([]byte, 32)
	p := LadderBase250(n, true)
	id := Identity()

	pw := Wrap(p)
	idw := Wrap(id)
	if fe127.Freeze(pw.Y) != fe127.Freeze(idw.Y) ||
		fe127.Freeze(pw.Z) != fe127.Freeze(idw.Z) ||
		fe127.Freeze(pw.T) != fe127.Freeze(idw.T) {
		t.Fatalf("[0]*basepoint did not wrap to the identity's wrap")
	}
}

func TestLadderConstantAndBranchyAgree(t *testing.T) {
	n := make([]byte, 32)
	for i := range n {
		n[i] = byte(i * 13)
	}
	pCT := LadderBase250(n, true)
	pBranchy := LadderBase250(n, false)

	cCT := Compress(pCT)
	cBranchy := Compress(pBranchy)
	if cCT != cBranchy {
		t.Fatalf("constant-time and branchy ladders disagree on the same scalar")
	}
}

// Check's own correctness is exercised end-to-end by package qdsa's
// sign/verify round-trip tests, which is the only place in this module a
// genuinely matching (sP, hQ, R) triple arises from real scalars rather
// than a hand-picked special case.

func TestDecompressDoesNotPanicOnArbitraryInput(t *testing.T) {
	var c Compressed
	for i := range c {
		c[i] = 0xFF
	}
	_, _ = Decompress(c)

	for i := range c {
		c[i] = byte(i)
	}
	_, _ = Decompress(c)
}
