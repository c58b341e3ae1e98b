// Package bobjr implements the "Bob Jr." sponge construction: a
// Keccak-f[800] permutation run for 10 rounds, rate 68 bytes, capacity 32
// bytes, with overwrite-mode absorption (input bytes replace state bytes
// directly rather than being XORed in, since the state is never reused
// across independent absorb calls the way a general-purpose duplex would).
//
// This is deliberately not built on golang.org/x/crypto/sha3: that
// package only offers Keccak-f[1600] instances, not the smaller f[800]
// permutation, the 68-byte rate, or overwrite-mode absorption Bob Jr.
// needs. See DESIGN.md and SPEC_FULL.md Part III.
package bobjr

import "encoding/binary"

// Rate is the number of bytes absorbed per permutation call.
const Rate = 68

// StateSize is the total size of the permutation state in bytes (25
// 32-bit lanes).
const StateSize = 100

// State is a Bob Jr. sponge context: the 100-byte permutation state plus
// a cursor into the rate portion. The zero value is not ready for use;
// call Init first.
type State struct {
	buf [StateSize]byte
	ptr int
}

// Init resets the sponge to its initial (all-zero) state.
func (s *State) Init() {
	*s = State{}
}

func bytesToWords(buf *[StateSize]byte) [words]uint32 {
	var w [words]uint32
	for i := 0; i < words; i++ {
		w[i] = binary.LittleEndian.Uint32(buf[i*4 : i*4+4])
	}
	return w
}

func wordsToBytes(w *[words]uint32, buf *[StateSize]byte) {
	for i := 0; i < words; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], w[i])
	}
}

func (s *State) permute() {
	w := bytesToWords(&s.buf)
	permute(&w)
	wordsToBytes(&w, &s.buf)
}

// Absorb overwrites the next len(data) bytes of the rate portion of the
// state with data, permuting whenever the rate fills. Overwrite mode,
// not XOR: each Init/Absorb.../Finish sequence is a single, independent
// hash computation, never a duplex reused across unrelated messages.
func (s *State) Absorb(data []byte) {
	for len(data) > 0 {
		n := Rate - s.ptr
		if n > len(data) {
			n = len(data)
		}
		copy(s.buf[s.ptr:s.ptr+n], data[:n])
		data = data[n:]
		s.ptr += n
		if s.ptr == Rate {
			s.permute()
			s.ptr = 0
		}
	}
}

// Finish pads and permutes the final block, leaving the resulting
// 100-byte state (whose first 64 bytes are the digest) ready to be read.
// The sponge must not be reused after Finish without calling Init again.
func (s *State) Finish() {
	for i := s.ptr; i < Rate; i++ {
		s.buf[i] = 0
	}
	s.buf[s.ptr] = 0x01
	s.buf[Rate-1] |= 0x80
	s.permute()
	s.ptr = 0
}

// Digest returns the first 64 bytes of the post-Finish state, the value
// every scheme-level hash call (keypair, sign, verify, the scalar
// combination step) actually consumes.
func (s *State) Digest() [64]byte {
	var d [64]byte
	copy(d[:], s.buf[:64])
	return d
}

// Sum is a convenience one-shot hash: Init, Absorb each of parts in
// order, Finish, return Digest.
func Sum(parts ...[]byte) [64]byte {
	var s State
	s.Init()
	for _, p := range parts {
		s.Absorb(p)
	}
	s.Finish()
	return s.Digest()
}
