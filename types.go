package axolotl

import "strconv"

// Fixed byte widths for every material the facade deals in. These mirror
// the struct sizes in the C++ axolotl::Curve25519KeyPair / Aes256Key /
// Aes256Iv types that this package's semantics were distilled from.
const (
	// ScalarSize is the width of a Curve25519 private scalar.
	ScalarSize = 32
	// PointSize is the width of a Curve25519 public point (Montgomery u-coordinate).
	PointSize = 32
	// SignatureSize is the width of a Curve25519-compatible (XEdDSA) signature.
	SignatureSize = 64
	// KeySize is the width of an AES-256 key.
	KeySize = 32
	// IVSize is the width of an AES-CBC initialization vector (one AES block).
	IVSize = 16
	// DigestSize is the width of a SHA-256 digest.
	DigestSize = 32
	// TagSize is the width of an HMAC-SHA-256 tag.
	TagSize = 32
)

// Curve25519PublicKey is a peer's Curve25519 public point in Montgomery
// form.
type Curve25519PublicKey [PointSize]byte

// Curve25519KeyPair is a Curve25519 private scalar together with the
// public point it was clamped and multiplied out to.
//
// Invariant: Public = scalar_mult(Private, basepoint=9), with the
// conventional Curve25519 clamping applied to Private.
type Curve25519KeyPair struct {
	Private [ScalarSize]byte
	Public  Curve25519PublicKey
}

// PublicKey returns a copy of the pair's public point.
func (kp Curve25519KeyPair) PublicKey() Curve25519PublicKey {
	return kp.Public
}

// Aes256Key is a 256-bit AES key.
type Aes256Key [KeySize]byte

// Aes256IV is a 128-bit AES-CBC initialization vector.
type Aes256IV [IVSize]byte

// Sha256Digest is a SHA-256 digest.
type Sha256Digest [DigestSize]byte

// HmacSha256Tag is an HMAC-SHA-256 authentication tag.
type HmacSha256Tag [TagSize]byte

// Curve25519Signature is an XEdDSA signature: carried and verified against
// a Curve25519 (Montgomery) public key, computed internally against the
// key's twisted-Edwards counterpart.
type Curve25519Signature [SignatureSize]byte

// sizeError formats a panic message for a wrong-sized buffer. Panicking on
// this class of error matches the convention used elsewhere for key
// material (djb.Public, djb.DH, djb.Header all panic on size mismatches)
// since a wrong-sized key-material buffer is a programmer error at the
// call site, not an adversarial-input condition.
func sizeError(who string, want, got int) string {
	return who + ": invalid size: want " + strconv.Itoa(want) + ", got " + strconv.Itoa(got)
}
