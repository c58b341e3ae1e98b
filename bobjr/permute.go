package bobjr

import "math/bits"

// words is the number of 32-bit lanes in the Keccak-f[800] state (5x5).
const words = 25

// roundConstants holds the last 10 of the full 22-round schedule. Bob Jr.
// always runs exactly 10 rounds, so only those are needed.
var roundConstants = [10]uint32{
	0x8000808B,
	0x0000008B,
	0x00008089,
	0x00008003,
	0x00008002,
	0x00000080,
	0x0000800A,
	0x8000000A,
	0x80008081,
	0x00008080,
}

func rol(x uint32, n uint) uint32 {
	return bits.RotateLeft32(x, int(n))
}

// permute applies the 10-round Keccak-f[800] permutation in place to a
// 25-lane state.
func permute(a *[words]uint32) {
	for round := 0; round < 10; round++ {
		// Theta
		var c [5]uint32
		for x := 0; x < 5; x++ {
			c[x] = a[x] ^ a[5+x] ^ a[10+x] ^ a[15+x] ^ a[20+x]
		}
		var d [5]uint32
		d[0] = c[4] ^ rol(c[1], 1)
		d[1] = c[0] ^ rol(c[2], 1)
		d[2] = c[1] ^ rol(c[3], 1)
		d[3] = c[2] ^ rol(c[4], 1)
		d[4] = c[3] ^ rol(c[0], 1)
		for k := 0; k < 5; k++ {
			for x := 0; x < 5; x++ {
				a[x+5*k] ^= d[x]
			}
		}

		// Rho + Pi: chase the lane permutation chain, rotating each lane
		// by its fixed offset as it moves to its new position.
		y := a[1]
		x := a[10]
		a[10] = rol(y, 1)
		y, x = x, a[7]
		a[7] = rol(y, 3)
		y, x = x, a[11]
		a[11] = rol(y, 6)
		y, x = x, a[17]
		a[17] = rol(y, 10)
		y, x = x, a[18]
		a[18] = rol(y, 15)
		y, x = x, a[3]
		a[3] = rol(y, 21)
		y, x = x, a[5]
		a[5] = rol(y, 28)
		y, x = x, a[16]
		a[16] = rol(y, 4)
		y, x = x, a[8]
		a[8] = rol(y, 13)
		y, x = x, a[21]
		a[21] = rol(y, 23)
		y, x = x, a[24]
		a[24] = rol(y, 2)
		y, x = x, a[4]
		a[4] = rol(y, 14)
		y, x = x, a[15]
		a[15] = rol(y, 27)
		y, x = x, a[23]
		a[23] = rol(y, 9)
		y, x = x, a[19]
		a[19] = rol(y, 24)
		y, x = x, a[13]
		a[13] = rol(y, 8)
		y, x = x, a[12]
		a[12] = rol(y, 25)
		y, x = x, a[2]
		a[2] = rol(y, 11)
		y, x = x, a[20]
		a[20] = rol(y, 30)
		y, x = x, a[14]
		a[14] = rol(y, 18)
		y, x = x, a[22]
		a[22] = rol(y, 7)
		y, x = x, a[9]
		a[9] = rol(y, 29)
		y, x = x, a[6]
		a[6] = rol(y, 20)
		a[1] = rol(x, 12)

		// Chi
		for yy := 0; yy < 5; yy++ {
			base := yy * 5
			x0, x1 := a[base], a[base+1]
			a[base] ^= ^x1 & a[base+2]
			a[base+1] ^= ^a[base+2] & a[base+3]
			a[base+2] ^= ^a[base+3] & a[base+4]
			a[base+3] ^= ^a[base+4] & x0
			a[base+4] ^= ^x0 & x1
		}

		// Iota
		a[0] ^= roundConstants[round]
	}
}
