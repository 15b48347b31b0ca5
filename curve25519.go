package axolotl

import "golang.org/x/crypto/curve25519"

// GenerateCurveKeyPair derives a Curve25519 key pair from 32 bytes of
// caller-supplied randomness: the private scalar is clamped per the
// curve's conventional clamping (golang.org/x/crypto/curve25519.X25519
// applies this internally) and the public point is
// scalar_mult(private, basepoint=9).
//
// This follows the usual djb-suite key generation shape — read 32 bytes
// from an io.Reader, call curve25519.X25519 against curve25519.Basepoint
// — except the randomness here is a value the caller already holds,
// keeping this package free of I/O.
func GenerateCurveKeyPair(random [ScalarSize]byte) (Curve25519KeyPair, error) {
	var kp Curve25519KeyPair
	kp.Private = random

	pub, err := curve25519.X25519(kp.Private[:], curve25519.Basepoint)
	if err != nil {
		secureZeroArray32(&kp.Private)
		return Curve25519KeyPair{}, err
	}
	copy(kp.Public[:], pub)
	return kp, nil
}

// SharedSecret computes the Curve25519 Diffie-Hellman shared secret
// scalar_mult(ours.Private, theirs).
func SharedSecret(ours Curve25519KeyPair, theirs Curve25519PublicKey) ([32]byte, error) {
	secret, err := curve25519.X25519(ours.Private[:], theirs[:])
	if err != nil {
		return [32]byte{}, err
	}
	var out [32]byte
	copy(out[:], secret)
	return out, nil
}
