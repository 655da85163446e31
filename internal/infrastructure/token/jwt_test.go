package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHMAC_IssueVerifyRoundTrip(t *testing.T) {
	h := NewHMAC("test-secret", time.Hour)

	signed, err := h.Issue("42")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	subject, err := h.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if subject != "42" {
		t.Fatalf("expected subject 42, got %q", subject)
	}
}

func TestHMAC_WrongSecretRejected(t *testing.T) {
	signed, err := NewHMAC("secret-a", time.Hour).Issue("42")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewHMAC("secret-b", time.Hour).Verify(signed); err == nil {
		t.Fatal("token signed with a different secret must not verify")
	}
}

func TestHMAC_GarbageRejected(t *testing.T) {
	h := NewHMAC("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := h.Verify(tok); err == nil {
			t.Fatalf("expected error for %q", tok)
		}
	}
}

func TestHMAC_EmptySubjectRejected(t *testing.T) {
	h := NewHMAC("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := h.Verify(signed); err == nil {
		t.Fatal("token without a subject must not verify")
	}
}

func TestHMAC_ExpiredRejected(t *testing.T) {
	h := NewHMAC("test-secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := h.Verify(signed); err == nil {
		t.Fatal("expired token must not verify")
	}
}

func TestHMAC_UnexpectedAlgRejected(t *testing.T) {
	h := NewHMAC("test-secret", time.Hour)

	// alg=none with the library's explicit opt-in; the verifier must still
	// refuse anything that is not HS256.
	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := h.Verify(signed); err == nil {
		t.Fatal("non-HS256 token must not verify")
	}
}

func TestHMAC_DefaultTTL(t *testing.T) {
	h := NewHMAC("test-secret", 0)
	if h.ttl != defaultTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultTTL, h.ttl)
	}
}
