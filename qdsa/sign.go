package qdsa

import (
	"github.com/lix2ng/qdsv/bobjr"
	"github.com/lix2ng/qdsv/kummer"
	"github.com/lix2ng/qdsv/metrics"
	"github.com/lix2ng/qdsv/scalar"
)

var signedCounter = metrics.DefaultRegistry.Counter("qdsa/signatures_produced")

// Sign produces a 64-byte signature over msg under the keypair (pk, sk).
// The nonce r is derived deterministically from the secret key's first
// half and the message (r = H(d"||M) mod N), so Sign never needs a
// random number generator and is stable across repeated calls with the
// same inputs.
func Sign(msg [32]byte, pk PublicKey, sk SecretKey, params Params) Signature {
	nonceDigest := bobjr.Sum(sk[:32], msg[:])
	r := scalar.ReduceWide(&nonceDigest)
	rBytes := r.Bytes()

	commitment := kummer.LadderBase250(rBytes[:], params.constantTime())
	commitmentC := kummer.Compress(commitment)

	var sig Signature
	copy(sig[:32], commitmentC[:])

	h := scalarGetHRQM(commitmentC[:], pk[:], msg[:])
	d := scalarGet32(sk[32:64])
	s := scalar.Ops(r, h, d)
	sBytes := s.Bytes()
	copy(sig[32:64], sBytes[:])

	signedCounter.Inc()
	return sig
}
