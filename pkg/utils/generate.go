package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// opaqueTokenBytes is 256 bits of entropy per generated token.
const opaqueTokenBytes = 32

// GenerateOpaqueToken returns a random hex string used for reset and
// remember tokens. These are opaque secrets, not signed tokens.
func GenerateOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
