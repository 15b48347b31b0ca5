package axolotl

import (
	"crypto/sha512"

	"filippo.io/edwards25519"
	"filippo.io/edwards25519/field"
)

// xeddsaDiversifier domain-separates this construction's deterministic
// nonce from a plain Ed25519 deterministic signature over the same key
// material, matching the constant used in the pack's libsignal-protocol-go
// fork (ecc/SignCurve25519.go).
var xeddsaDiversifier = [32]byte{
	0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
	0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
}

// Sign produces an XEdDSA-style signature over msg that verifies against
// ours's Montgomery (Curve25519) public key via Verify.
//
// The Ed25519-form keypair is derived deterministically from the 32-byte
// Montgomery private scalar (same clamped scalar, scalar-multiplied
// against the Edwards basepoint instead of the Montgomery one), a standard
// Ed25519 signature is computed over msg, and the Edwards public key's
// sign bit is folded into the high bit of the signature's S half so a
// verifier holding only the Montgomery public key can recover it. See
// Verify.
//
// This mirrors the sign/verify pair a libsignal-protocol-go fork
// implements (ecc/SignCurve25519.go) atop filippo.io/edwards25519; unlike
// that reference this construction is fully deterministic (no auxiliary
// random input), since this package's Sign takes none.
func Sign(ours Curve25519KeyPair, msg []byte) Curve25519Signature {
	privScalar, err := edwards25519.NewScalar().SetBytesWithClamping(ours.Private[:])
	if err != nil {
		panic("Sign: invalid private scalar: " + err.Error())
	}

	A := new(edwards25519.Point).ScalarBaseMult(privScalar)
	aBytes := A.Bytes()

	var rHash [64]byte
	h := sha512.New()
	h.Write(xeddsaDiversifier[:])
	h.Write(ours.Private[:])
	h.Write(msg)
	var noAuxRandom [64]byte
	h.Write(noAuxRandom[:])
	h.Sum(rHash[:0])
	defer secureZeroArray64(&rHash)

	rScalar, err := edwards25519.NewScalar().SetUniformBytes(rHash[:])
	if err != nil {
		panic("Sign: nonce reduction failed: " + err.Error())
	}
	R := new(edwards25519.Point).ScalarBaseMult(rScalar)
	rBytes := R.Bytes()

	var hramDigest [64]byte
	h2 := sha512.New()
	h2.Write(rBytes)
	h2.Write(aBytes)
	h2.Write(msg)
	h2.Sum(hramDigest[:0])
	defer secureZeroArray64(&hramDigest)

	hramScalar, err := edwards25519.NewScalar().SetUniformBytes(hramDigest[:])
	if err != nil {
		panic("Sign: challenge reduction failed: " + err.Error())
	}

	s := edwards25519.NewScalar().MultiplyAdd(hramScalar, privScalar, rScalar)

	var sig Curve25519Signature
	copy(sig[:32], rBytes)
	copy(sig[32:], s.Bytes())
	sig[63] |= aBytes[31] & 0x80
	return sig
}

// Verify reports whether sig is a valid signature over msg under theirs,
// a Montgomery (Curve25519) public key.
//
// The twisted-Edwards y-coordinate is recovered from the Montgomery
// u-coordinate via y = (u - 1) / (u + 1) mod p, choosing the positive
// (even) sign; the true sign bit carried in the signature's high bit is
// then folded back in, that bit is cleared from a working copy of the
// signature's S half so it decodes as a canonical scalar, and a standard
// Ed25519 verification is performed.
func Verify(theirs Curve25519PublicKey, msg []byte, sig Curve25519Signature) bool {
	var u field.Element
	if _, err := u.SetBytes(theirs[:]); err != nil {
		return false
	}

	one := new(field.Element).One()
	uMinus1 := new(field.Element).Subtract(&u, one)
	uPlus1 := new(field.Element).Add(&u, one)
	inv := new(field.Element).Invert(uPlus1)
	y := new(field.Element).Multiply(uMinus1, inv)

	aBytes := y.Bytes()
	signBit := sig[63] & 0x80
	aBytes[31] |= signBit

	A, err := new(edwards25519.Point).SetBytes(aBytes)
	if err != nil {
		return false
	}

	var sigCopy Curve25519Signature = sig
	sigCopy[63] &= 0x7f

	R, err := new(edwards25519.Point).SetBytes(sigCopy[:32])
	if err != nil {
		return false
	}
	s, err := new(edwards25519.Scalar).SetCanonicalBytes(sigCopy[32:])
	if err != nil {
		return false
	}

	var hramDigest [64]byte
	h := sha512.New()
	h.Write(sigCopy[:32])
	h.Write(aBytes)
	h.Write(msg)
	h.Sum(hramDigest[:0])

	hramScalar, err := edwards25519.NewScalar().SetUniformBytes(hramDigest[:])
	if err != nil {
		return false
	}

	minusA := new(edwards25519.Point).Negate(A)
	check := new(edwards25519.Point).VarTimeDoubleScalarBaseMult(hramScalar, minusA, s)
	return check.Equal(R) == 1
}
