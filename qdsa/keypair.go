package qdsa

import (
	"github.com/lix2ng/qdsv/bobjr"
	"github.com/lix2ng/qdsv/kummer"
)

// Keypair expands a 32-byte seed into a 64-byte pseudo-random secret key
// and its corresponding compressed public key point. The first half of
// the secret key is the per-signature nonce seed d"; the second half
// reduces mod N to the long-term scalar d' that derives the public key.
func Keypair(seed [32]byte, params Params) (PublicKey, SecretKey) {
	digest := bobjr.Sum(seed[:])

	var sk SecretKey
	copy(sk[:], digest[:])

	d := scalarGet32(sk[32:64])
	dBytes := d.Bytes()
	r := kummer.LadderBase250(dBytes[:], params.constantTime())
	c := kummer.Compress(r)

	var pk PublicKey
	copy(pk[:], c[:])

	log_.Debug("keypair generated")
	return pk, sk
}
