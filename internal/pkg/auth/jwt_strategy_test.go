package auth

import (
	"testing"
	"time"
)

func TestJWTStrategyRoundTrip(t *testing.T) {
	s := NewJWTStrategy("secret", Options{TTL: time.Hour})

	token, err := s.IssueToken(42)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	userID, err := s.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user 42, got %d", userID)
	}
}

func TestJWTStrategyRejectsGarbage(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})

	cases := []string{"", "not-a-token", "a.b.c"}
	for _, token := range cases {
		if _, err := s.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestJWTStrategyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{TTL: time.Hour})
	verifier := NewJWTStrategy("secret-b", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestJWTStrategyRejectsExpiredToken(t *testing.T) {
	s := NewJWTStrategy("secret", Options{TTL: time.Minute})

	issued := time.Now().Add(-2 * time.Hour)
	s.now = func() time.Time { return issued }
	token, err := s.IssueToken(7)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	s.now = time.Now
	if _, err := s.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestJWTStrategyDefaultsTTL(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})
	if s.ttl != 24*time.Hour {
		t.Fatalf("expected 24h default ttl, got %v", s.ttl)
	}
	if s.Name() != "jwt" {
		t.Fatalf("unexpected strategy name %q", s.Name())
	}
}
