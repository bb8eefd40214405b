// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/hex"
	"strings"
	"testing"
	"time"
)

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(16)
	if err != nil {
		t.Fatalf("GenerateID failed: %v", err)
	}

	if len(id) != 32 {
		t.Errorf("Expected 32 hex chars for 16 bytes, got %d", len(id))
	}

	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("ID is not valid hex: %v", err)
	}
}

func TestGenerateIDUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id, err := GenerateID(16)
		if err != nil {
			t.Fatalf("GenerateID failed: %v", err)
		}
		if seen[id] {
			t.Fatalf("Duplicate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestGenerateRegistrationToken(t *testing.T) {
	token, err := GenerateRegistrationToken()
	if err != nil {
		t.Fatalf("GenerateRegistrationToken failed: %v", err)
	}

	// 16 bytes -> 22 base64 chars once padding is trimmed
	if len(token) != 22 {
		t.Errorf("Expected 22 chars, got %d (%s)", len(token), token)
	}

	if strings.ContainsAny(token, "=+/") {
		t.Errorf("Token is not URL-safe: %s", token)
	}
}

func TestGenerateRegistrationTokenUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token, err := GenerateRegistrationToken()
		if err != nil {
			t.Fatalf("GenerateRegistrationToken failed: %v", err)
		}
		if seen[token] {
			t.Fatalf("Duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}

func TestCheckCredentials(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{"valid", "admin", "secret", false},
		{"wrong password", "admin", "wrong", true},
		{"wrong username", "root", "secret", true},
		{"both wrong", "root", "wrong", true},
		{"empty", "", "", true},
		{"case sensitive username", "Admin", "secret", true},
		{"case sensitive password", "admin", "Secret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCredentials(tt.username, tt.password, "admin", "secret")
			if tt.wantErr && err == nil {
				t.Error("Expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected success, got %v", err)
			}
		})
	}
}

func TestSessionTokenRoundTrip(t *testing.T) {
	issued := time.Now().Truncate(time.Second)

	token, err := NewSessionToken("admin", "test-secret", issued)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	sess, err := ParseSessionToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseSessionToken failed: %v", err)
	}

	if sess.Subject != "admin" {
		t.Errorf("Expected subject 'admin', got %q", sess.Subject)
	}
	if !sess.IssuedAt.Equal(issued) {
		t.Errorf("Expected issued at %v, got %v", issued, sess.IssuedAt)
	}
}

func TestParseSessionTokenWrongSecret(t *testing.T) {
	token, err := NewSessionToken("admin", "right-secret", time.Now())
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	if _, err := ParseSessionToken(token, "wrong-secret"); err != ErrInvalidSession {
		t.Errorf("Expected ErrInvalidSession, got %v", err)
	}
}

func TestParseSessionTokenTampered(t *testing.T) {
	token, err := NewSessionToken("admin", "test-secret", time.Now())
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := ParseSessionToken(tampered, "test-secret"); err != ErrInvalidSession {
		t.Errorf("Expected ErrInvalidSession for tampered token, got %v", err)
	}
}

func TestParseSessionTokenGarbage(t *testing.T) {
	for _, garbage := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ParseSessionToken(garbage, "test-secret"); err != ErrInvalidSession {
			t.Errorf("Expected ErrInvalidSession for %q, got %v", garbage, err)
		}
	}
}

func TestParseSessionTokenExpired(t *testing.T) {
	issued := time.Now().Add(-SessionTTL - time.Hour)

	token, err := NewSessionToken("admin", "test-secret", issued)
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	if _, err := ParseSessionToken(token, "test-secret"); err != ErrInvalidSession {
		t.Errorf("Expected ErrInvalidSession for expired token, got %v", err)
	}
}
