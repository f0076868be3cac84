package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestHMACService_RoundTrip(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	userID := uuid.New()

	token, err := svc.GenerateSessionToken(userID, "demo@student.edu")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "demo@student.edu" {
		t.Fatalf("unexpected email %q", claims.Email)
	}
}

func TestHMACService_ExpiredToken(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.GenerateSessionToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestHMACService_WrongSecret(t *testing.T) {
	token, err := NewHMACService("secret-a", time.Hour).GenerateSessionToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, err = NewHMACService("secret-b", time.Hour).ValidateToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_Garbage(t *testing.T) {
	svc := NewHMACService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestHMACService_EmptySecret(t *testing.T) {
	svc := NewHMACService("", time.Hour)
	if _, err := svc.GenerateSessionToken(uuid.New(), ""); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
