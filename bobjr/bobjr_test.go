package bobjr

import "testing"

func TestSumDeterministic(t *testing.T) {
	a := Sum([]byte("hello"), []byte("world"))
	b := Sum([]byte("hello"), []byte("world"))
	if a != b {
		t.Fatalf("Sum is not deterministic: %x != %x", a, b)
	}
}

func TestSumDistinguishesInputs(t *testing.T) {
	a := Sum([]byte{0x00})
	b := Sum([]byte{0x01})
	if a == b {
		t.Fatalf("Sum collided on trivially different inputs")
	}
}

func TestAbsorbChunkingIndependence(t *testing.T) {
	msg := make([]byte, 3*Rate+5)
	for i := range msg {
		msg[i] = byte(i)
	}

	var s1 State
	s1.Init()
	s1.Absorb(msg)
	s1.Finish()

	var s2 State
	s2.Init()
	for i := 0; i < len(msg); i++ {
		s2.Absorb(msg[i : i+1])
	}
	s2.Finish()

	if s1.Digest() != s2.Digest() {
		t.Fatalf("absorbing in one call vs byte-at-a-time produced different digests")
	}
}

func TestEmptyInputDeterministic(t *testing.T) {
	d1 := Sum()
	d2 := Sum()
	if d1 != d2 {
		t.Fatalf("empty-input digest is not deterministic: %x != %x", d1, d2)
	}
	var zero [64]byte
	if d1 == zero {
		t.Fatalf("empty-input digest must not be all-zero")
	}
}

func TestAbsorbAtExactRateBoundary(t *testing.T) {
	msg := make([]byte, Rate)
	for i := range msg {
		msg[i] = 0xAB
	}
	var s State
	s.Init()
	s.Absorb(msg)
	if s.ptr != 0 {
		t.Fatalf("absorbing exactly Rate bytes must leave ptr at 0 (post-permute), got %d", s.ptr)
	}
	s.Finish()
	_ = s.Digest()
}
