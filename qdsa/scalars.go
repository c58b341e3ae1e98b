package qdsa

import (
	"github.com/lix2ng/qdsv/bobjr"
	"github.com/lix2ng/qdsv/scalar"
)

// scalarGet32 reduces a single 32-byte value mod N (scalar_get32),
// matching the zero-extend-then-fold scalar.Reduce32 implements.
func scalarGet32(x []byte) scalar.Scalar {
	var b [32]byte
	copy(b[:], x)
	return scalar.Reduce32(&b)
}

// scalarGetHRQM hashes R (the signature's compressed commitment), Q (the
// public key), and M (the message) with Bob Jr. and reduces the 64-byte
// digest mod N in one step, matching scalar_get_hrqm exactly.
func scalarGetHRQM(r, q, m []byte) scalar.Scalar {
	d := bobjr.Sum(r, q, m)
	return scalar.ReduceWide(&d)
}
