package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateAndParseToken_Success(t *testing.T) {
	t.Parallel()

	secret := "super-secret"

	tok, err := GenerateToken(42, "user@example.com", secret, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	claims, err := ParseToken(tok, secret)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id mismatch: got %d want 42", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Fatalf("email mismatch: got %q", claims.Email)
	}
}

func TestGenerateToken_ExpirySelectsPolicy(t *testing.T) {
	t.Parallel()

	secret := "k"
	for _, days := range []int{7, 30} {
		ttl := time.Duration(days) * 24 * time.Hour
		tok, err := GenerateToken(1, "a@b.co", secret, ttl)
		if err != nil {
			t.Fatalf("GenerateToken error: %v", err)
		}

		claims, err := ParseToken(tok, secret)
		if err != nil {
			t.Fatalf("ParseToken error: %v", err)
		}

		got := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
		if got != ttl {
			t.Fatalf("lifetime mismatch: got %v want %v", got, ttl)
		}
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	secret := "k"

	// A default token inspected one day after its expiry
	tok, err := GenerateToken(1, "a@b.co", secret, -24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, secret)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_StillValidBeforeExpiry(t *testing.T) {
	t.Parallel()

	secret := "k"

	// A remember-me token inspected with one day of lifetime left
	tok, err := GenerateToken(1, "a@b.co", secret, 24*time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := ParseToken(tok, secret); err != nil {
		t.Fatalf("expected token to still verify, got %v", err)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken(1, "a@b.co", "right-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = ParseToken(tok, "wrong-secret")
	if err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", "k")
	if err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_RejectsUnexpectedAlgorithm(t *testing.T) {
	t.Parallel()

	// alg=none token must never verify
	token := jwt.NewWithClaims(jwt.SigningMethodNone, TokenClaims{
		UserID: 1,
		Email:  "a@b.co",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign error: %v", err)
	}

	if _, err := ParseToken(signed, "k"); err == nil {
		t.Fatal("expected error for unsigned token, got nil")
	}
}
