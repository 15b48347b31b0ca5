package axolotl

import "runtime"

// secureZero overwrites p with zeros and is never eliminated by the
// compiler: the //go:noinline directive keeps the write out of an inlined,
// dead-store-eligible call site, and runtime.KeepAlive keeps p reachable
// past the final write so the store can't be proven dead and removed.
//
//go:noinline
func secureZero(p []byte) {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}

// secureZeroArray32 zeroizes a 32-byte array in place, used for the secret
// arrays (private scalars, keys, digests, tags) that the facade passes by
// value.
//
//go:noinline
func secureZeroArray32(p *[32]byte) {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}

// secureZeroArray64 zeroizes a 64-byte array in place (HMAC block-sized
// pads, Ed25519 scratch buffers).
//
//go:noinline
func secureZeroArray64(p *[64]byte) {
	for i := range p {
		p[i] = 0
	}
	runtime.KeepAlive(p)
}
