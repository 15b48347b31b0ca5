// Package wire implements the length-prefixed, tag-delimited binary codec
// used to encapsulate ratcheted messages and pre-key ("one-time key")
// handshake messages.
//
// The codec is schema-compatible with a subset of a well-known
// field-tagged, varint-based serialization family: tag bytes carry a field
// number and a 3-bit wire type (0 = varint, 2 = length-delimited), exactly
// as message.cpp's RATCHET_KEY_TAG/COUNTER_TAG/CIPHERTEXT_TAG and friends
// define it for the two record shapes this package encodes and decodes.
//
// Encoders never allocate beyond the caller-provided output buffer; they
// write fields by value into it, accepting the cost of one extra copy per
// length-delimited field in exchange for a Go-idiomatic API over a
// streaming writer. Decoders are lenient by construction: fields may
// arrive in any order, unknown fields are skipped rather than rejected,
// and truncated or malformed length prefixes simply leave later fields
// absent rather than raising an error. This leniency is intentional —
// see the doc comments on DecodeRatchetMessage and DecodePreKeyMessage.
package wire
