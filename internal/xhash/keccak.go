// Package xhash provides the standard NIST-unpadded Keccak-256 hash used by
// test fixtures in this module to derive deterministic-but-varied seeds and
// messages. It has nothing to do with the bobjr sponge used by the signature
// engine itself (which runs a smaller, differently-padded permutation); it
// exists purely as a convenient, collision-resistant way to turn a short
// label into 32 bytes of filler for table-driven tests.
package xhash

import "golang.org/x/crypto/sha3"

// Keccak256 calculates the Keccak-256 hash of the concatenation of data.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}
	return d.Sum(nil)
}
