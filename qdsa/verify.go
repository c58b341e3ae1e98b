package qdsa

import (
	"github.com/lix2ng/qdsv/kummer"
	"github.com/lix2ng/qdsv/metrics"
)

var (
	acceptedCounter = metrics.DefaultRegistry.Counter("qdsa/verifications_accepted")
	rejectedCounter = metrics.DefaultRegistry.Counter("qdsa/verifications_rejected")
)

// Verify reports whether sig is a valid signature over msg under pk. Per
// the scheme's no-oracle requirement, every rejection reason (a
// malformed public key, a malformed signature commitment, or a genuine
// verification-equation failure) collapses to the same false result —
// Verify must not let a caller distinguish "bad input" from "forged
// signature" through anything observable in its return value.
//
// Verify always uses the public-scalar, variable-time ladder internally:
// both scalars it derives (h and the signature's s) are, by definition,
// never secret, so there is nothing for the masked-swap strategy to
// protect here even when the rest of a build runs in ModeFull.
func Verify(sig Signature, pk PublicKey, msg [32]byte) bool {
	q, ok := kummer.Decompress(toCompressed([32]byte(pk)))
	if !ok {
		log_.Debug("verify rejected", "reason", "public key does not decompress")
		rejectedCounter.Inc()
		return false
	}

	s := scalarGet32(sig[32:64])
	h := scalarGetHRQM(sig[0:32], pk[:], msg[:])

	pkw := kummer.Wrap(q)
	hBytes := h.Bytes()
	hQ, _ := kummer.Ladder(pkw, q, hBytes[:], false)

	sBytes := s.Bytes()
	sP := kummer.LadderBase250(sBytes[:], false)

	var commitment kummer.Compressed
	copy(commitment[:], sig[0:32])

	accept := kummer.Check(sP, hQ, commitment)
	if accept {
		acceptedCounter.Inc()
	} else {
		log_.Debug("verify rejected", "reason", "verification equation failed")
		rejectedCounter.Inc()
	}
	return accept
}
