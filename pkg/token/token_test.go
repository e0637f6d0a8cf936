package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue("a@b.com", "admin")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	subject, role, err := issuer.Validate(signed)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if subject != "a@b.com" {
		t.Fatalf("expected subject a@b.com, got %q", subject)
	}
	if role != "admin" {
		t.Fatalf("expected role admin, got %q", role)
	}
}

func TestIssuer_ClaimsWindow(t *testing.T) {
	issuer := NewIssuer("secret", 2*time.Hour)

	signed, err := issuer.Issue("a@b.com", "user")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := issuer.ParseClaims(signed)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 2*time.Hour {
		t.Fatalf("expected 2h validity window, got %v", got)
	}
	if !claims.NotBefore.Equal(claims.IssuedAt.Time) {
		t.Fatalf("expected nbf == iat, got nbf=%v iat=%v", claims.NotBefore, claims.IssuedAt)
	}
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue("a@b.com", "user")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Move the clock past expiry.
	issuer.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	if _, _, err := issuer.Validate(signed); !errors.Is(err, ErrExpired) {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestIssuer_NotValidBeforeIssuance(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue("a@b.com", "user")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Move the clock before issuance.
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	if _, _, err := issuer.Validate(signed); err == nil {
		t.Fatalf("expected validation to fail before issuedAt")
	}
}

func TestIssuer_BadSignature(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)
	other := NewIssuer("a-different-secret", time.Hour)

	signed, err := other.Issue("a@b.com", "admin")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, _, err := issuer.Validate(signed); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestIssuer_TamperedPayload(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	signed, err := issuer.Issue("a@b.com", "user")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Swap the payload segment for one from a token with different claims.
	elevated, err := issuer.Issue("mallory@b.com", "admin")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	origParts := strings.Split(signed, ".")
	elevParts := strings.Split(elevated, ".")
	tampered := origParts[0] + "." + elevParts[1] + "." + origParts[2]

	if _, _, err := issuer.Validate(tampered); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}
}

func TestIssuer_Malformed(t *testing.T) {
	issuer := NewIssuer("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, _, err := issuer.Validate(tok); !errors.Is(err, ErrMalformed) {
			t.Fatalf("token %q: expected ErrMalformed, got %v", tok, err)
		}
	}
}

func TestNewIssuer_DefaultTTL(t *testing.T) {
	issuer := NewIssuer("secret", 0)
	if issuer.TTL() != 10*time.Hour {
		t.Fatalf("expected default TTL of 10h, got %v", issuer.TTL())
	}
}
