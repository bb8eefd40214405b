// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventlink/models"
	"eventlink/testutil"
)

func TestListParticipants(t *testing.T) {
	st := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	h := NewParticipantHandler(st, cfg)

	evt := testutil.CreateTestEvent(t, st, "Hack Day", "2025-01-01")
	testutil.RegisterTestParticipant(t, st, evt.ID, "Alice", "alice@x.com", "MIT")
	testutil.RegisterTestParticipant(t, st, evt.ID, "Bob", "bob@x.com", "CMU")

	req := testutil.MakeRequest("GET", "/events/"+evt.ID+"/participants", nil)
	req.SetPathValue("eventID", evt.ID)
	w := httptest.NewRecorder()

	h.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ParticipantListResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.ParticipantCount != 2 || len(resp.Participants) != 2 {
		t.Errorf("Expected 2 participants, got count=%d len=%d", resp.ParticipantCount, len(resp.Participants))
	}
	if resp.RegistrationURL != cfg.BaseURL+"/register/"+evt.RegistrationToken {
		t.Errorf("Unexpected registration URL: %q", resp.RegistrationURL)
	}
}

func TestListParticipantsSearchFilter(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewParticipantHandler(st, testutil.GetTestConfig())

	evt := testutil.CreateTestEvent(t, st, "Hack Day", "2025-01-01")
	testutil.RegisterTestParticipant(t, st, evt.ID, "Alice", "alice@x.com", "MIT")
	testutil.RegisterTestParticipant(t, st, evt.ID, "Bob", "bob@x.com", "CMU")

	req := testutil.MakeRequest("GET", "/events/"+evt.ID+"/participants?search=ALI", nil)
	req.SetPathValue("eventID", evt.ID)
	w := httptest.NewRecorder()

	h.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.ParticipantListResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Participants) != 1 || resp.Participants[0].Name != "Alice" {
		t.Errorf("Expected only Alice for 'ALI', got %+v", resp.Participants)
	}
	if resp.SearchQuery != "ALI" {
		t.Errorf("Expected search query echoed, got %q", resp.SearchQuery)
	}
	if resp.ParticipantCount != 1 {
		t.Errorf("Count must equal the filtered set length, got %d", resp.ParticipantCount)
	}
}

func TestListParticipantsEventNotFound(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewParticipantHandler(st, testutil.GetTestConfig())

	req := testutil.MakeRequest("GET", "/events/missing/participants", nil)
	req.SetPathValue("eventID", "missing")
	w := httptest.NewRecorder()

	h.List(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeleteParticipant(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewParticipantHandler(st, testutil.GetTestConfig())

	evt := testutil.CreateTestEvent(t, st, "Hack Day", "2025-01-01")
	p := testutil.RegisterTestParticipant(t, st, evt.ID, "Ann", "ann@x.com", "MIT")

	req := testutil.MakeRequest("POST", "/events/"+evt.ID+"/participants/"+p.ID+"/delete", nil)
	req.SetPathValue("eventID", evt.ID)
	req.SetPathValue("participantID", p.ID)
	w := httptest.NewRecorder()

	h.Delete(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DeleteParticipantResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Removed != 1 {
		t.Errorf("Expected 1 removed, got %d", resp.Removed)
	}

	count, _ := st.CountParticipants(context.Background(), evt.ID)
	if count != 0 {
		t.Errorf("Expected 0 participants, got %d", count)
	}
}

// TestDeleteParticipantCrossEvent verifies the event-id scoping: an admin
// URL for one event can never remove another event's participant.
func TestDeleteParticipantCrossEvent(t *testing.T) {
	st := testutil.SetupTestStore(t)
	h := NewParticipantHandler(st, testutil.GetTestConfig())

	evt1 := testutil.CreateTestEvent(t, st, "Event One", "2025-01-01")
	evt2 := testutil.CreateTestEvent(t, st, "Event Two", "2025-02-01")
	p := testutil.RegisterTestParticipant(t, st, evt1.ID, "Ann", "ann@x.com", "MIT")

	req := testutil.MakeRequest("POST", "/events/"+evt2.ID+"/participants/"+p.ID+"/delete", nil)
	req.SetPathValue("eventID", evt2.ID)
	req.SetPathValue("participantID", p.ID)
	w := httptest.NewRecorder()

	h.Delete(w, req)

	// Not an error, just zero rows removed
	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.DeleteParticipantResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Removed != 0 {
		t.Errorf("Expected 0 removed cross-event, got %d", resp.Removed)
	}

	count, _ := st.CountParticipants(context.Background(), evt1.ID)
	if count != 1 {
		t.Errorf("Participant must survive cross-event delete, count=%d", count)
	}
}
