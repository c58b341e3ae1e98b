package qdsa

import (
	"testing"

	"github.com/lix2ng/qdsv/internal/xhash"
)

func seed(label string) [32]byte {
	var s [32]byte
	copy(s[:], xhash.Keccak256([]byte(label)))
	return s
}

func message(label string) [32]byte {
	var m [32]byte
	copy(m[:], xhash.Keccak256([]byte("msg"), []byte(label)))
	return m
}

func TestSignVerifyRoundTrip(t *testing.T) {
	pk, sk := Keypair(seed("alice"), DefaultParams())
	msg := message("hello world")

	sig := Sign(msg, pk, sk, DefaultParams())
	if !Verify(sig, pk, msg) {
		t.Fatalf("Verify rejected a genuine signature")
	}
}

func TestSignIsDeterministic(t *testing.T) {
	pk, sk := Keypair(seed("bob"), DefaultParams())
	msg := message("deterministic")

	sig1 := Sign(msg, pk, sk, DefaultParams())
	sig2 := Sign(msg, pk, sk, DefaultParams())
	if sig1 != sig2 {
		t.Fatalf("Sign is not deterministic for identical inputs")
	}
}

func TestVerifyRejectsWrongMessage(t *testing.T) {
	pk, sk := Keypair(seed("carol"), DefaultParams())
	msg := message("original")
	wrongMsg := message("tampered")

	sig := Sign(msg, pk, sk, DefaultParams())
	if Verify(sig, pk, wrongMsg) {
		t.Fatalf("Verify accepted a signature over a different message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	pkA, skA := Keypair(seed("dave"), DefaultParams())
	pkB, _ := Keypair(seed("erin"), DefaultParams())
	msg := message("cross key")

	sig := Sign(msg, pkA, skA, DefaultParams())
	if Verify(sig, pkB, msg) {
		t.Fatalf("Verify accepted a signature under the wrong public key")
	}
}

func TestVerifyRejectsBitFlips(t *testing.T) {
	pk, sk := Keypair(seed("frank"), DefaultParams())
	msg := message("bitflip sweep")
	sig := Sign(msg, pk, sk, DefaultParams())

	if !Verify(sig, pk, msg) {
		t.Fatalf("baseline signature did not verify")
	}

	for byteIdx := 0; byteIdx < len(sig); byteIdx++ {
		for bit := 0; bit < 8; bit++ {
			flipped := sig
			flipped[byteIdx] ^= 1 << uint(bit)
			if Verify(flipped, pk, msg) {
				t.Fatalf("Verify accepted a signature with byte %d bit %d flipped", byteIdx, bit)
			}
		}
	}
}

func TestVerifyRejectsInvalidPublicKey(t *testing.T) {
	_, sk := Keypair(seed("grace"), DefaultParams())
	msg := message("bad key")

	var garbagePK PublicKey
	for i := range garbagePK {
		garbagePK[i] = 0xFF
	}

	sig := Sign(msg, garbagePK, sk, DefaultParams())
	if Verify(sig, garbagePK, msg) {
		t.Fatalf("Verify accepted a signature under an undecodable public key")
	}
}

func TestKeypairDeterministicFromSeed(t *testing.T) {
	pk1, sk1 := Keypair(seed("henry"), DefaultParams())
	pk2, sk2 := Keypair(seed("henry"), DefaultParams())
	if pk1 != pk2 || sk1 != sk2 {
		t.Fatalf("Keypair is not deterministic for the same seed")
	}

	pk3, _ := Keypair(seed("irene"), DefaultParams())
	if pk1 == pk3 {
		t.Fatalf("different seeds produced the same public key")
	}
}

func TestDHExchangeIsCommutative(t *testing.T) {
	var skA, skB [32]byte
	copy(skA[:], xhash.Keccak256([]byte("dh-alice")))
	copy(skB[:], xhash.Keccak256([]byte("dh-bob")))

	pkA := DHKeygen(skA, DefaultParams())
	pkB := DHKeygen(skB, DefaultParams())

	ssAB, err := DHExchange(pkB, skA, DefaultParams())
	if err != nil {
		t.Fatalf("DHExchange(A side) failed: %v", err)
	}
	ssBA, err := DHExchange(pkA, skB, DefaultParams())
	if err != nil {
		t.Fatalf("DHExchange(B side) failed: %v", err)
	}

	if ssAB != ssBA {
		t.Fatalf("DH shared secrets do not agree: %x != %x", ssAB, ssBA)
	}
}

func TestDHExchangeRejectsInvalidPublicKey(t *testing.T) {
	var sk [32]byte
	copy(sk[:], xhash.Keccak256([]byte("dh-solo")))

	var garbagePK PublicKey
	for i := range garbagePK {
		garbagePK[i] = 0xFF
	}

	if _, err := DHExchange(garbagePK, sk, DefaultParams()); err == nil {
		t.Fatalf("DHExchange accepted an undecodable remote public key")
	}
}

func TestVerifyModeAgnosticism(t *testing.T) {
	pk, sk := Keypair(seed("judy"), Params{Mode: ModeVerifyOnly})
	msg := message("verify only keypair")
	sig := Sign(msg, pk, sk, Params{Mode: ModeVerifyOnly})
	if !Verify(sig, pk, msg) {
		t.Fatalf("a keypair/signature produced with ModeVerifyOnly failed to verify")
	}
}
