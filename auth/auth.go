// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidSession     = errors.New("invalid session")
)

// SessionTTL bounds how long an admin login stays valid.
const SessionTTL = 12 * time.Hour

// Session is an authenticated admin identity, threaded through the request
// context by the middleware. There is no ambient "logged in" global.
type Session struct {
	Subject  string
	IssuedAt time.Time
}

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// GenerateRegistrationToken creates the opaque capability string embedded in
// a public registration link. 16 bytes = 128 bits of entropy; global
// uniqueness is additionally enforced by the store's UNIQUE constraint.
func GenerateRegistrationToken() (string, error) {
	b := make([]byte, 16)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate registration token: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// CheckCredentials compares a login attempt against the configured admin
// identity. Both fields are compared in constant time and the error does not
// say which one was wrong.
func CheckCredentials(username, password, wantUsername, wantPassword string) error {
	userOK := hmac.Equal([]byte(username), []byte(wantUsername))
	passOK := hmac.Equal([]byte(password), []byte(wantPassword))
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// NewSessionToken signs a session token for the given admin subject.
func NewSessionToken(subject, secret string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates a session token and returns the Session it
// carries. Any failure (bad signature, wrong algorithm, expired) collapses
// to ErrInvalidSession.
func ParseSessionToken(tokenStr, secret string) (Session, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return Session{}, ErrInvalidSession
	}

	var issuedAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	return Session{Subject: claims.Subject, IssuedAt: issuedAt}, nil
}
