package qdsa

import "github.com/lix2ng/qdsv/kummer"

// DHKeygen derives a public Kummer point from a 32-byte secret scalar,
// the Diffie-Hellman counterpart to Keypair (no nonce-derivation half is
// needed here, since there is no signature to produce).
func DHKeygen(sk [32]byte, params Params) PublicKey {
	s := scalarGet32(sk[:])
	sBytes := s.Bytes()
	r := kummer.LadderBase250(sBytes[:], params.constantTime())
	c := kummer.Compress(r)

	var pk PublicKey
	copy(pk[:], c[:])
	return pk
}

// DHExchange computes the shared secret between a local secret scalar and
// a remote party's public key. Returns ErrInvalidPublicKey if pkRemote
// does not decompress to a valid Kummer point.
func DHExchange(pkRemote PublicKey, skLocal [32]byte, params Params) ([32]byte, error) {
	var ss [32]byte

	pk, ok := kummer.Decompress(toCompressed([32]byte(pkRemote)))
	if !ok {
		return ss, ErrInvalidPublicKey
	}

	pkw := kummer.Wrap(pk)
	s := scalarGet32(skLocal[:])
	sBytes := s.Bytes()
	shared, _ := kummer.Ladder(pkw, pk, sBytes[:], params.constantTime())

	c := kummer.Compress(shared)
	copy(ss[:], c[:])
	return ss, nil
}
