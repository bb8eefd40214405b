// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventlink/auth"
	"eventlink/cliparse"
	"eventlink/middleware"
	"eventlink/models"
	"eventlink/store"
)

// GetTestConfig returns a standard test configuration backed by an
// in-memory SQLite database.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          5000,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminUsername: "admin",
		AdminPassword: "test-password",
		SessionSecret: "test-session-secret",
		BaseURL:       "http://localhost:5000",
	}
}

// SetupTestStore opens a fresh in-memory store with the full schema.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	st, err := store.Open(GetTestConfig())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if err := st.CreateSchema(context.Background()); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return st
}

// CreateTestEvent creates an event and returns it (including its token).
func CreateTestEvent(t *testing.T, st *store.Store, name, date string) models.Event {
	t.Helper()

	evt, err := st.CreateEvent(context.Background(), name, "A test event", date)
	if err != nil {
		t.Fatalf("Failed to create test event: %v", err)
	}
	return evt
}

// RegisterTestParticipant registers a participant directly in the store.
func RegisterTestParticipant(t *testing.T, st *store.Store, eventID, name, email, college string) models.Participant {
	t.Helper()

	p, err := st.CreateParticipant(context.Background(), eventID, name, email, college)
	if err != nil {
		t.Fatalf("Failed to register test participant: %v", err)
	}
	return p
}

// AdminCookie returns a valid session cookie for the test admin.
func AdminCookie(t *testing.T, cfg cliparse.Config) *http.Cookie {
	t.Helper()

	token, err := auth.NewSessionToken(cfg.AdminUsername, cfg.SessionSecret, time.Now())
	if err != nil {
		t.Fatalf("Failed to sign test session token: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
