package security

import (
	"crypto/rand"
	"encoding/hex"
)

const resetTokenBytes = 32

// GenerateResetTokenValue produces the opaque random value embedded in a
// password reset link. 32 bytes of crypto/rand entropy, hex-encoded.
func GenerateResetTokenValue() (string, error) {
	bytes := make([]byte, resetTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
