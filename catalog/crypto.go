package catalog

import (
	"bytes"
	"crypto/aes"
	"encoding/base64"
	"fmt"
)

const aesKeySize = 32

// normalizeKey truncates the key to 32 bytes and pads shorter keys with NUL
// bytes, matching the feed publisher's key handling.
func normalizeKey(key string) []byte {
	k := make([]byte, aesKeySize)
	copy(k, key)
	return k
}

// EncryptPayload encrypts plaintext with AES-256-ECB and PKCS#7 padding and
// returns the base64-encoded ciphertext.
//
// ECB is a weak mode; it is kept solely for compatibility with the existing
// payload format.
func EncryptPayload(plain []byte, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return "", err
	}

	padLen := aes.BlockSize - len(plain)%aes.BlockSize
	padded := make([]byte, 0, len(plain)+padLen)
	padded = append(padded, plain...)
	padded = append(padded, bytes.Repeat([]byte{byte(padLen)}, padLen)...)

	out := make([]byte, len(padded))
	for i := 0; i < len(padded); i += aes.BlockSize {
		block.Encrypt(out[i:i+aes.BlockSize], padded[i:i+aes.BlockSize])
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// DecryptPayload reverses EncryptPayload: base64 decode, AES-256-ECB decrypt
// and PKCS#7 unpad. A wrong key surfaces as ErrDecryptionFailed.
func DecryptPayload(encoded string, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d", ErrDecryptionFailed, len(raw))
	}

	block, err := aes.NewCipher(normalizeKey(key))
	if err != nil {
		return nil, err
	}

	plain := make([]byte, len(raw))
	for i := 0; i < len(raw); i += aes.BlockSize {
		block.Decrypt(plain[i:i+aes.BlockSize], raw[i:i+aes.BlockSize])
	}

	padLen := int(plain[len(plain)-1])
	if padLen < 1 || padLen > aes.BlockSize || padLen > len(plain) {
		return nil, fmt.Errorf("%w: bad padding", ErrDecryptionFailed)
	}
	for _, b := range plain[len(plain)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("%w: bad padding", ErrDecryptionFailed)
		}
	}
	return plain[:len(plain)-padLen], nil
}
