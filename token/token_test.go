package token

import (
	"errors"
	"testing"
	"time"

	"socialnet/apperrors"
)

func TestGenerateAndVerify(t *testing.T) {
	t.Parallel()

	m := NewManager("super-secret", time.Hour)
	userID := "64f0c2e8a1b2c3d4e5f60718"

	tok, err := m.Generate(userID)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	got, err := m.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	if got != userID {
		t.Fatalf("user id mismatch: got %q want %q", got, userID)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", -time.Second)
	tok, err := m.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = m.Verify(tok)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !errors.Is(err, apperrors.ErrAuth) {
		t.Fatalf("expected an auth error, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewManager("right-secret", time.Hour).Generate("u2")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	_, err = NewManager("wrong-secret", time.Hour).Verify(tok)
	if !errors.Is(err, apperrors.ErrAuth) {
		t.Fatalf("expected an auth error, got %v", err)
	}
}

func TestVerify_MissingAndMalformed(t *testing.T) {
	t.Parallel()

	m := NewManager("secret", time.Hour)
	for _, raw := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := m.Verify(raw); !errors.Is(err, apperrors.ErrAuth) {
			t.Fatalf("Verify(%q): expected an auth error, got %v", raw, err)
		}
	}
}
