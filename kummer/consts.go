package kummer

import "github.com/lix2ng/qdsv/fe127"

// mu1..mu4 are the fixed coordinates of the ladder's starting identity
// point.
const (
	mu1 = 0x0B
	mu2 = 0x16
	mu3 = 0x13
	mu4 = 0x03
)

// muhat holds the absolute values of the Hadamard transform of
// (-mu1,mu2,mu3,mu4), used by the verification equation's B_ii/B_ij forms.
var muhat = [4]uint16{0x0021, 0x000B, 0x0011, 0x0031}

// ehat is the constant multiplied in after the first Hadamard step inside
// xDBLADD (and into the squared coordinates in biiValues).
var ehat = [4]uint16{0x341, 0x9C3, 0x651, 0x231}

// econs is multiplied into xp's coordinates at the end of xDBLADD.
var econs = [4]uint16{0x72, 0x39, 0x42, 0x1A2}

// Rosenhain-invariant constants used by compression/decompression's
// K2/K3/K4 biquadratic forms.
const (
	q0 = 0x0DF7
	q1 = 0x2599
	q2 = 0x1211
	q3 = 0x2FE3
	q4 = 0x2C0B
	q5 = 0x1D33
	q6 = 0x1779
	q7 = 0xABD7
)

// khat1..4 are the coefficients of T's own matrix, used by T (compress's
// matrix step). Decompress's inverse step uses mu1, mu3 and mu4 instead.
const (
	khat1 = 0x3C1
	khat2 = 0x80
	khat3 = 0x239
	khat4 = 0x449
)

// dotConst's coefficients, used by the B_ii verification form.
const (
	dk1 = 0x1259
	dk2 = 0x173F
	dk3 = 0x1679
	dk4 = 0x07C7
)

// quadC is the 128-bit constant the verification equation's quad test
// multiplies the cross term by.
var quadC = fe127.FromBytesLE([]byte{
	0x43, 0xA8, 0xDD, 0xCD, 0xD8, 0xE3, 0xF7, 0x46,
	0xDD, 0xA2, 0x20, 0xA3, 0xEF, 0x0E, 0xF5, 0x40,
})

// baseWrapped is the hard-coded wrapped base point LadderBase250 starts
// every ladder from.
var baseWrapped = Wrapped{
	Y: fe127.FromBytesLE(le32(0x4E931A48, 0xAEB351A6, 0x2049C2E7, 0x1BE0C3DC)),
	Z: fe127.FromBytesLE(le32(0xE07E36DF, 0x64659818, 0x8EABA630, 0x23B416CD)),
	T: fe127.FromBytesLE(le32(0x7215441E, 0xC7AE3D05, 0x4447A24D, 0x5DB35C38)),
}

// le32 packs four 32-bit little-endian words into a 16-byte slice, the
// layout fe127.FromBytesLE expects.
func le32(w0, w1, w2, w3 uint32) []byte {
	var b [16]byte
	put := func(off int, w uint32) {
		b[off] = byte(w)
		b[off+1] = byte(w >> 8)
		b[off+2] = byte(w >> 16)
		b[off+3] = byte(w >> 24)
	}
	put(0, w0)
	put(4, w1)
	put(8, w2)
	put(12, w3)
	return b[:]
}
