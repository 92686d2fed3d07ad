package common

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
)

func Sha256HMAC(msg []byte, key []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(msg)

	return h.Sum(nil)
}

// VerifySha256HMAC reports whether signature is the HMAC-SHA256 of msg, encoded
// as hex or standard base64. The comparison is constant time.
func VerifySha256HMAC(msg []byte, key []byte, signature string) bool {
	if signature == "" {
		return false
	}

	expected := Sha256HMAC(msg, key)

	if decoded, err := hex.DecodeString(signature); err == nil && hmac.Equal(decoded, expected) {
		return true
	}

	if decoded, err := base64.StdEncoding.DecodeString(signature); err == nil && hmac.Equal(decoded, expected) {
		return true
	}

	return false
}
