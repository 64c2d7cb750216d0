package utils

import (
	"encoding/hex"
	"testing"
)

func TestGenerateOpaqueToken_Entropy(t *testing.T) {
	t.Parallel()

	tok, err := GenerateOpaqueToken()
	if err != nil {
		t.Fatalf("GenerateOpaqueToken error: %v", err)
	}

	// 32 random bytes hex-encoded
	if len(tok) != 64 {
		t.Fatalf("token length: got %d want 64", len(tok))
	}
	if _, err := hex.DecodeString(tok); err != nil {
		t.Fatalf("token is not valid hex: %v", err)
	}
}

func TestGenerateOpaqueToken_Unique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := GenerateOpaqueToken()
		if err != nil {
			t.Fatalf("GenerateOpaqueToken error: %v", err)
		}
		if seen[tok] {
			t.Fatal("duplicate token generated")
		}
		seen[tok] = true
	}
}
