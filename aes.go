package axolotl

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

// ErrInvalidPadding is returned by Decrypt when the trailing PKCS#7 pad
// byte exceeds the ciphertext length. Callers must check it and treat it
// as a failed decryption, never as a partial result.
//
// Decrypt does not validate that every padding byte equals the declared
// pad length — only that the declared length is plausible. Authenticity of
// the plaintext relies on an external MAC over the ciphertext; this
// mirrors aes_decrypt_cbc in the original C++ reference, which performs
// the same single-byte check.
var ErrInvalidPadding = errors.New("axolotl: invalid CBC padding")

// EncryptLen returns the ciphertext length produced by Encrypt for a
// plaintext of the given length: always a multiple of aes.BlockSize, with
// a full padding block appended when plaintextLen is already block-aligned.
func EncryptLen(plaintextLen int) int {
	return plaintextLen + (aes.BlockSize - plaintextLen%aes.BlockSize)
}

// Encrypt performs AES-256-CBC encryption of plaintext under key and iv,
// applying PKCS#7-style padding first. The returned ciphertext is always
// EncryptLen(len(plaintext)) bytes.
//
// Uses stdlib crypto/aes + crypto/cipher exactly as nist.go does for its
// AES-GCM path and as oxzi/xochimilco's primitives.go does for its
// CBC+PKCS7 path; only the padding/mode combination differs (CBC with
// PKCS#7 rather than an AEAD).
func Encrypt(key Aes256Key, iv Aes256IV, plaintext []byte) []byte {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		panic("Encrypt: " + err.Error())
	}

	padded := pkcs7Pad(plaintext)
	defer secureZero(padded)

	out := make([]byte, len(padded))
	mode := cipher.NewCBCEncrypter(block, iv[:])
	mode.CryptBlocks(out, padded)
	return out
}

// Decrypt performs AES-256-CBC decryption of ciphertext under key and iv
// and strips the PKCS#7-style padding. ciphertext's length must be a
// positive multiple of aes.BlockSize. Returns ErrInvalidPadding if the
// trailing pad-length byte exceeds the ciphertext length.
func Decrypt(key Aes256Key, iv Aes256IV, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidPadding
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	padded := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv[:])
	mode.CryptBlocks(padded, ciphertext)
	defer secureZero(padded)

	pad := int(padded[len(padded)-1])
	if pad > len(padded) {
		return nil, ErrInvalidPadding
	}

	plaintext := make([]byte, len(padded)-pad)
	copy(plaintext, padded[:len(padded)-pad])
	return plaintext, nil
}

// pkcs7Pad appends a PKCS#7-style pad: the final block's unused tail (and,
// if plaintext is already block-aligned, a full extra block) is filled
// with the byte value 16 - (len(plaintext) mod 16), repeated.
func pkcs7Pad(plaintext []byte) []byte {
	pad := aes.BlockSize - len(plaintext)%aes.BlockSize
	out := make([]byte, len(plaintext)+pad)
	copy(out, plaintext)
	for i := len(plaintext); i < len(out); i++ {
		out[i] = byte(pad)
	}
	return out
}
