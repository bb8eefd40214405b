// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"eventlink/models"
	"eventlink/testutil"
)

func TestHealthCheck(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	adminRoutes := []struct{ method, path string }{
		{"GET", "/dashboard"},
		{"POST", "/events/create"},
		{"POST", "/events/some-id/delete"},
		{"GET", "/events/some-id/participants"},
		{"POST", "/events/some-id/participants/some-pid/delete"},
	}

	for _, route := range adminRoutes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			req := testutil.MakeRequest(route.method, route.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}

func TestPublicRoutesNeedNoSession(t *testing.T) {
	st := testutil.SetupTestStore(t)
	mux := NewRouter(st, testutil.GetTestConfig())

	evt := testutil.CreateTestEvent(t, st, "Hack Day", "2025-01-01")

	req := testutil.MakeRequest("GET", "/register/"+evt.RegistrationToken, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/success", nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

// TestEndToEndFlow exercises the routed surface the way a real admin and
// participant would: log in, create an event, register via the public link,
// inspect the participant list, delete the event.
func TestEndToEndFlow(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	mux := NewRouter(st, cfg)

	// Log in
	req := testutil.MakeRequest("POST", "/login", models.LoginRequest{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Value != "" {
			session = c
		}
	}
	if session == nil {
		t.Fatal("Login did not set a session cookie")
	}

	// Create an event
	req = testutil.MakeRequest("POST", "/events/create", models.CreateEventRequest{
		Name: "Hack Day", Date: "2025-01-01",
	}, session)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateEventResponse
	testutil.AssertJSON(t, w, &created)
	token := strings.TrimPrefix(created.RegistrationURL, cfg.BaseURL+"/register/")
	if token == "" || token == created.RegistrationURL {
		t.Fatalf("Created event has no usable registration URL: %q", created.RegistrationURL)
	}

	// Participant registers through the public link
	req = testutil.MakeRequest("POST", "/register/"+token, models.RegisterRequest{
		Name: "Ann", Email: "ann@x.com", College: "MIT",
	})
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Admin sees the participant
	req = testutil.MakeRequest("GET", "/events/"+created.Event.ID+"/participants", nil, session)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var list models.ParticipantListResponse
	testutil.AssertJSON(t, w, &list)
	if list.ParticipantCount != 1 {
		t.Errorf("Expected 1 participant, got %d", list.ParticipantCount)
	}

	// Admin deletes the event; the registration link dies with it
	req = testutil.MakeRequest("POST", "/events/"+created.Event.ID+"/delete", nil, session)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	req = testutil.MakeRequest("GET", "/register/"+token, nil)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
