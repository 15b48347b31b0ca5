package wire

// PreKeyMessage is the decoded form of a pre-key ("one-time key") wire
// record: a version byte plus five optional fields — registration_id,
// one_time_key_id, base_key, identity_key, message. As with
// RatchetMessage, a nil byte-slice field or a false Has* flag marks that
// field absent.
type PreKeyMessage struct {
	Version         byte
	RegistrationID  uint32
	HasRegistration bool
	OneTimeKeyID    uint32
	HasOneTimeKeyID bool
	BaseKey         []byte
	IdentityKey     []byte
	Message         []byte
}

// PreKeyMessageLen returns the exact number of bytes EncodePreKeyMessage
// writes for the given field lengths/values.
func PreKeyMessageLen(registrationID, oneTimeKeyID uint32, identityKeyLen, baseKeyLen, messageLen int) int {
	n := 1 // version
	n += 1 + VarintLen(uint64(registrationID))
	n += 1 + VarintLen(uint64(oneTimeKeyID))
	n += 1 + VarintLen(uint64(baseKeyLen)) + baseKeyLen
	n += 1 + VarintLen(uint64(identityKeyLen)) + identityKeyLen
	n += 1 + VarintLen(uint64(messageLen)) + messageLen
	return n
}

// EncodePreKeyMessage writes a pre-key record (version, registration_id,
// one_time_key_id, base_key, identity_key, message — canonical field
// order) into out. out must be exactly
// PreKeyMessageLen(registrationID, oneTimeKeyID, len(identityKey),
// len(baseKey), len(message)) bytes; EncodePreKeyMessage panics otherwise.
func EncodePreKeyMessage(out []byte, version byte, registrationID, oneTimeKeyID uint32, baseKey, identityKey, message []byte) {
	want := PreKeyMessageLen(registrationID, oneTimeKeyID, len(identityKey), len(baseKey), len(message))
	if len(out) != want {
		panic(sizeError("EncodePreKeyMessage", want, len(out)))
	}

	pos := 0
	out[pos] = version
	pos++

	out[pos] = registrationIDTag
	pos++
	pos = VarintEncode(out, pos, uint64(registrationID))

	out[pos] = oneTimeKeyIDTag
	pos++
	pos = VarintEncode(out, pos, uint64(oneTimeKeyID))

	out[pos] = baseKeyTag
	pos++
	pos = VarintEncode(out, pos, uint64(len(baseKey)))
	pos += copy(out[pos:], baseKey)

	out[pos] = identityKeyTag
	pos++
	pos = VarintEncode(out, pos, uint64(len(identityKey)))
	pos += copy(out[pos:], identityKey)

	out[pos] = messageTag
	pos++
	pos = VarintEncode(out, pos, uint64(len(message)))
	pos += copy(out[pos:], message)
}

// DecodePreKeyMessage parses the pre-key record in input under the same
// leniency rules as DecodeRatchetMessage: fields may appear in any order,
// unknown fields are skipped by wire type, and truncation never faults —
// it only leaves later fields absent. Input longer than MaxRecordSize is
// treated as if it were empty.
func DecodePreKeyMessage(input []byte) PreKeyMessage {
	var msg PreKeyMessage
	if len(input) > MaxRecordSize || len(input) == 0 {
		return msg
	}

	end := len(input)
	msg.Version = input[0]
	pos := 1

	for pos < end {
		start := pos
		if pos < end && input[pos] == registrationIDTag {
			pos++
			valStart := pos
			pos = VarintSkip(input, pos, end)
			msg.RegistrationID = uint32(VarintDecode(input, valStart, pos))
			msg.HasRegistration = true
		}
		if pos < end && input[pos] == oneTimeKeyIDTag {
			pos++
			valStart := pos
			pos = VarintSkip(input, pos, end)
			msg.OneTimeKeyID = uint32(VarintDecode(input, valStart, pos))
			msg.HasOneTimeKeyID = true
		}
		if pos < end && input[pos] == baseKeyTag {
			pos++
			lenStart := pos
			pos = VarintSkip(input, pos, end)
			n := int(VarintDecode(input, lenStart, pos))
			if n > end-pos {
				pos = end
			} else {
				msg.BaseKey = input[pos : pos+n]
				pos += n
			}
		}
		if pos < end && input[pos] == identityKeyTag {
			pos++
			lenStart := pos
			pos = VarintSkip(input, pos, end)
			n := int(VarintDecode(input, lenStart, pos))
			if n > end-pos {
				pos = end
			} else {
				msg.IdentityKey = input[pos : pos+n]
				pos += n
			}
		}
		if pos < end && input[pos] == messageTag {
			pos++
			lenStart := pos
			pos = VarintSkip(input, pos, end)
			n := int(VarintDecode(input, lenStart, pos))
			if n > end-pos {
				pos = end
			} else {
				msg.Message = input[pos : pos+n]
				pos += n
			}
		}
		if pos == start {
			pos = skipUnknown(input, pos, end)
		}
	}
	return msg
}
