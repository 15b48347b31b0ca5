package wire

// RatchetMessage is the decoded form of a ratchet wire record: a version
// byte, an optional ratchet_key field, an optional varint counter, and an
// optional ciphertext field. A nil RatchetKey/Ciphertext or
// HasCounter == false marks that field absent — the decoder leaves
// fields at these zero values rather than erroring when they are
// missing, truncated, or out of order.
type RatchetMessage struct {
	Version    byte
	RatchetKey []byte
	Counter    uint32
	HasCounter bool
	Ciphertext []byte
	// MAC is the trailing authentication tag: the unconsumed suffix of
	// the decoded input, not part of the tagged body. It is not
	// produced by EncodeRatchetMessage (callers append it separately) and must be
	// verified independently with MAC (see the root package).
	MAC []byte
}

// RatchetMessageBodyLen returns the exact number of bytes
// EncodeRatchetMessage writes for the given field lengths/value — the tagged body, excluding
// the trailing MAC.
func RatchetMessageBodyLen(ratchetKeyLen int, counter uint32, ciphertextLen int) int {
	n := 1 // version
	n += 1 + VarintLen(uint64(ratchetKeyLen)) + ratchetKeyLen
	n += 1 + VarintLen(uint64(counter))
	n += 1 + VarintLen(uint64(ciphertextLen)) + ciphertextLen
	return n
}

// RatchetMessageLen returns the total wire length of a ratchet record,
// including a trailing MAC of macLen bytes.
func RatchetMessageLen(ratchetKeyLen int, counter uint32, ciphertextLen, macLen int) int {
	return RatchetMessageBodyLen(ratchetKeyLen, counter, ciphertextLen) + macLen
}

// EncodeRatchetMessage writes the tagged body of a ratchet record (version,
// ratchet_key, counter, ciphertext — canonical field order) into out. out
// must be exactly RatchetMessageBodyLen(len(ratchetKey), counter,
// len(ciphertext)) bytes; EncodeRatchetMessage panics otherwise, on the
// same convention as the rest of this package: caller-supplied buffers of
// the wrong size are a programmer error. The trailing MAC is not written
// here — the caller appends it after this call returns.
func EncodeRatchetMessage(out []byte, version byte, ratchetKey []byte, counter uint32, ciphertext []byte) {
	want := RatchetMessageBodyLen(len(ratchetKey), counter, len(ciphertext))
	if len(out) != want {
		panic(sizeError("EncodeRatchetMessage", want, len(out)))
	}

	pos := 0
	out[pos] = version
	pos++

	out[pos] = ratchetKeyTag
	pos++
	pos = VarintEncode(out, pos, uint64(len(ratchetKey)))
	pos += copy(out[pos:], ratchetKey)

	out[pos] = counterTag
	pos++
	pos = VarintEncode(out, pos, uint64(counter))

	out[pos] = ciphertextTag
	pos++
	pos = VarintEncode(out, pos, uint64(len(ciphertext)))
	pos += copy(out[pos:], ciphertext)
}

// DecodeRatchetMessage parses the ratchet record in input, restricting its
// scan to input[:len(input)-macLen] and returning the unconsumed trailing
// macLen bytes as RatchetMessage.MAC.
//
// An empty body yields a RatchetMessage with every field absent; fields
// may appear in any order; unknown fields are skipped by wire type; and
// truncation or an overrunning length prefix leaves the remaining fields
// absent without producing an error. Input longer than MaxRecordSize is
// treated as if it were empty, refusing to scan it at all.
func DecodeRatchetMessage(input []byte, macLen int) RatchetMessage {
	var msg RatchetMessage
	if len(input) > MaxRecordSize || macLen > len(input) {
		return msg
	}

	end := len(input) - macLen
	msg.MAC = input[end:]

	if end == 0 {
		return msg
	}

	msg.Version = input[0]
	pos := 1

	for pos < end {
		start := pos
		if pos < end && input[pos] == ratchetKeyTag {
			pos++
			lenStart := pos
			pos = VarintSkip(input, pos, end)
			n := int(VarintDecode(input, lenStart, pos))
			if n > end-pos {
				pos = end
			} else {
				msg.RatchetKey = input[pos : pos+n]
				pos += n
			}
		}
		if pos < end && input[pos] == counterTag {
			pos++
			valStart := pos
			pos = VarintSkip(input, pos, end)
			msg.Counter = uint32(VarintDecode(input, valStart, pos))
			msg.HasCounter = true
		}
		if pos < end && input[pos] == ciphertextTag {
			pos++
			lenStart := pos
			pos = VarintSkip(input, pos, end)
			n := int(VarintDecode(input, lenStart, pos))
			if n > end-pos {
				pos = end
			} else {
				msg.Ciphertext = input[pos : pos+n]
				pos += n
			}
		}
		if pos == start {
			pos = skipUnknown(input, pos, end)
		}
	}
	return msg
}
