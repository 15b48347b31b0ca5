package axolotl

// HKDFDefaultSalt is the 32-byte all-zero salt substituted by KDF when the
// caller passes an absent salt, matching the C++ reference's
// HKDF_DEFAULT_SALT constant.
var HKDFDefaultSalt = [DigestSize]byte{}

// maxKDFOutput is the largest output KDF can produce: the expand step's
// iteration counter is a single byte, so at most 255 32-byte blocks (T1..T255)
// can be generated before it would wrap.
const maxKDFOutput = 255 * hmacOutputSize

// KDF implements HKDF-SHA-256 (RFC 5869) as two MAC-based stages:
//
//   prk = MAC(salt, input)                                   (extract)
//   T_i = MAC(prk, T_(i-1) || info || byte(i)), i = 1, 2, ... (expand)
//   out = (T_1 || T_2 || ...)[:outLen]
//
// If salt is nil, HKDFDefaultSalt is used. outLen must not exceed
// maxKDFOutput (8160 bytes); behavior beyond that is undefined by the
// iteration counter's single-byte width, so KDF panics rather than
// silently wrapping.
//
// Every intermediate T_i and the extracted prk are zeroized before KDF
// returns.
func KDF(input, salt, info []byte, outLen int) []byte {
	if outLen > maxKDFOutput {
		panic(sizeError("KDF: outLen", maxKDFOutput, outLen))
	}
	if salt == nil {
		salt = HKDFDefaultSalt[:]
	}

	prk := MAC(salt, input)
	defer secureZeroArray32((*[32]byte)(&prk))

	out := make([]byte, 0, outLen)
	var prev HmacSha256Tag
	hasPrev := false
	counter := byte(1)
	for len(out) < outLen {
		buf := make([]byte, 0, len(prev)*boolToInt(hasPrev)+len(info)+1)
		if hasPrev {
			buf = append(buf, prev[:]...)
		}
		buf = append(buf, info...)
		buf = append(buf, counter)

		ti := MAC(prk[:], buf)
		secureZero(buf)

		n := len(ti)
		if remaining := outLen - len(out); n > remaining {
			n = remaining
		}
		out = append(out, ti[:n]...)

		prev = ti
		secureZeroArray32((*[32]byte)(&ti))
		hasPrev = true
		counter++
	}
	secureZeroArray32((*[32]byte)(&prev))
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
