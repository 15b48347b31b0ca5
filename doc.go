// Package axolotl implements the cryptographic primitive facade for a
// double-ratchet secure messaging scheme: fixed-output hashing, keyed
// message authentication, key derivation, Curve25519 Diffie-Hellman and
// Ed25519-compatible signatures over the same curve points, and AES-256-CBC
// bulk encryption with PKCS#7-style padding.
//
// Overview
//
// Every primitive here is a pure function over caller-owned, fixed-size
// byte buffers: there is no heap allocation beyond what a single call
// needs, no global state, and no I/O. Secret intermediates held in this
// package's own buffers — HMAC pads and inner digest, KDF chaining values
// and extracted key, the padded AES working buffer, Sign's nonce and
// challenge hashes — are zeroized before the function that produced them
// returns. State held inside library types is not zeroized: the AES key
// schedule inside crypto/aes's cipher.Block, crypto/sha256 hash state, the
// edwards25519 scalars Sign derives, and the slice curve25519.X25519
// returns to SharedSecret. See zero.go.
//
// This package does not implement the double-ratchet state machine,
// session persistence, or key storage; it only supplies the primitives
// that a ratchet implementation is built from. Pair it with the wire
// subpackage to encode and decode ratchet and pre-key handshake messages.
//
// References
//
//    [rfc2104]: https://www.rfc-editor.org/rfc/rfc2104
//    [rfc5869]: https://www.rfc-editor.org/rfc/rfc5869
//    [rfc7748]: https://www.rfc-editor.org/rfc/rfc7748
//    [xeddsa]:  https://signal.org/docs/specifications/xeddsa/
//
package axolotl
