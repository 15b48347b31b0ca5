package axolotl

import "crypto/sha256"

const (
	hmacBlockSize  = sha256.BlockSize // 64
	hmacOutputSize = sha256.Size      // 32
)

// MAC computes HMAC-SHA-256 per RFC 2104: block size 64, output 32.
//
// Key preprocessing: if key is longer than the block size it is replaced
// by Hash(key); the (possibly shortened) key is then right-padded with
// zeros to the block size. The inner pad is key XOR 0x36 repeated across
// the block, the outer pad is key XOR 0x5C repeated across the block, and
// the result is Hash(outer || Hash(inner || msg)).
//
// This is hand-rolled atop crypto/sha256 rather than wrapped around the
// stdlib crypto/hmac package so that the padded key buffers can be
// zeroized explicitly once the tag has been produced — crypto/hmac keeps
// its ipad/opad state unexported and unreachable, which would leave key
// material lingering in memory after every call. See DESIGN.md.
func MAC(key, msg []byte) HmacSha256Tag {
	var hmacKey [hmacBlockSize]byte
	prepareHMACKey(key, &hmacKey)
	defer secureZeroArray64(&hmacKey)

	var iPad, oPad [hmacBlockSize]byte
	for i := 0; i < hmacBlockSize; i++ {
		iPad[i] = hmacKey[i] ^ 0x36
		oPad[i] = hmacKey[i] ^ 0x5c
	}
	defer secureZeroArray64(&iPad)
	defer secureZeroArray64(&oPad)

	inner := sha256.New()
	inner.Write(iPad[:])
	inner.Write(msg)
	var innerSum [hmacOutputSize]byte
	inner.Sum(innerSum[:0])
	defer secureZeroArray32(&innerSum)

	outer := sha256.New()
	outer.Write(oPad[:])
	outer.Write(innerSum[:])

	var tag HmacSha256Tag
	outer.Sum(tag[:0])
	return tag
}

// prepareHMACKey implements the RFC 2104 key-preprocessing step: if key is
// longer than the block size it is replaced with Hash(key), then
// right-padded with zeros to the block size.
func prepareHMACKey(key []byte, out *[hmacBlockSize]byte) {
	for i := range out {
		out[i] = 0
	}
	if len(key) > hmacBlockSize {
		digest := Hash(key)
		copy(out[:], digest[:])
		return
	}
	copy(out[:], key)
}
