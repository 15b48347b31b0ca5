package axolotl

import (
	"bytes"
	"encoding/hex"
	"testing"
)

func mustHex32(t *testing.T, s string) [32]byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	var out [32]byte
	if len(b) != 32 {
		t.Fatalf("expected 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out
}

func TestSharedSecretVector(t *testing.T) {
	// RFC 7748 §6.1 Curve25519 Diffie-Hellman test vectors.
	aPriv := mustHex32(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	aPub := mustHex32(t, "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a")
	bPriv := mustHex32(t, "5dab087e624a8a4b79e17f8b83800ee66f3bb1292618b6fd1c2f8b27ff88e0eb")
	bPub := mustHex32(t, "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f")
	want, err := hex.DecodeString("4a5d9d5ba4ce2de1728e3bf480350f25e07e21c947d19e3376f09b3c1e161742")
	if err != nil {
		t.Fatal(err)
	}

	alice := Curve25519KeyPair{Private: aPriv, Public: Curve25519PublicKey(aPub)}
	bob := Curve25519KeyPair{Private: bPriv, Public: Curve25519PublicKey(bPub)}

	ab, err := SharedSecret(alice, bob.Public)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := SharedSecret(bob, alice.Public)
	if err != nil {
		t.Fatal(err)
	}
	if ab != ba {
		t.Fatalf("ECDH not commutative: %x != %x", ab, ba)
	}
	if !bytes.Equal(ab[:], want) {
		t.Fatalf("SharedSecret = %x, want %x", ab, want)
	}
}

func TestGenerateCurveKeyPairDerivesPublic(t *testing.T) {
	random := mustHex32(t, "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a")
	wantPub := mustHex32(t, "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a")

	kp, err := GenerateCurveKeyPair(random)
	if err != nil {
		t.Fatal(err)
	}
	if kp.Public != Curve25519PublicKey(wantPub) {
		t.Fatalf("GenerateCurveKeyPair public = %x, want %x", kp.Public, wantPub)
	}
}

func TestSharedSecretCommutesRandomly(t *testing.T) {
	var r1, r2 [32]byte
	for i := range r1 {
		r1[i] = byte(i*7 + 1)
		r2[i] = byte(i*13 + 5)
	}
	our, err := GenerateCurveKeyPair(r1)
	if err != nil {
		t.Fatal(err)
	}
	their, err := GenerateCurveKeyPair(r2)
	if err != nil {
		t.Fatal(err)
	}

	a, err := SharedSecret(our, their.Public)
	if err != nil {
		t.Fatal(err)
	}
	b, err := SharedSecret(their, our.Public)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("ECDH not commutative on generated keys: %x != %x", a, b)
	}
}
