package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func testService() *Service {
	return NewService(&JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "chesswire-test",
		TTL:    time.Hour,
	})
}

func TestGuestTokenRoundTrip(t *testing.T) {
	svc := testService()

	token, err := svc.GuestToken("alice")
	if err != nil {
		t.Fatalf("guest token: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Name != "alice" {
		t.Fatalf("unexpected name in claims: %q", claims.Name)
	}
}

func TestGuestTokenRejectsBadNames(t *testing.T) {
	svc := testService()

	for _, name := range []string{"", "   ", strings.Repeat("x", 33)} {
		if _, err := svc.GuestToken(name); !errors.Is(err, ErrInvalidName) {
			t.Fatalf("expected ErrInvalidName for %q, got %v", name, err)
		}
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	svc := testService()

	token, err := svc.GuestToken("bob")
	if err != nil {
		t.Fatalf("guest token: %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := NewService(&JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "chesswire-test",
		TTL:    -time.Minute,
	})

	token, err := svc.GuestToken("carol")
	if err != nil {
		t.Fatalf("guest token: %v", err)
	}

	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateRejectsWrongIssuer(t *testing.T) {
	other := NewService(&JWTConfig{
		Secret: []byte("test-secret"),
		Issuer: "someone-else",
		TTL:    time.Hour,
	})

	token, err := other.GuestToken("dave")
	if err != nil {
		t.Fatalf("guest token: %v", err)
	}

	if _, err := testService().ValidateToken(token); err == nil {
		t.Fatal("expected wrong-issuer token to be rejected")
	}
}
