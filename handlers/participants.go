// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"eventlink/cliparse"
	"eventlink/middleware"
	"eventlink/models"
	"eventlink/store"
)

type ParticipantHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewParticipantHandler(st *store.Store, cfg cliparse.Config) *ParticipantHandler {
	return &ParticipantHandler{store: st, cfg: cfg}
}

// List handles GET /events/{eventID}/participants
// Optional ?search= filters by case-insensitive substring against name or
// email.
func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id is required")
		return
	}

	evt, err := h.store.GetEvent(r.Context(), eventID)
	if errors.Is(err, store.ErrEventNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query event", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	search := strings.TrimSpace(r.URL.Query().Get("search"))

	participants, err := h.store.ListParticipants(r.Context(), eventID, search)
	if err != nil {
		slog.Error("failed to list participants", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ParticipantListResponse{
		Event:            evt,
		Participants:     participants,
		ParticipantCount: len(participants),
		SearchQuery:      search,
		RegistrationURL:  registrationURL(h.cfg, evt.RegistrationToken),
	})
}

// Delete handles POST /events/{eventID}/participants/{participantID}/delete
// Scoped by both IDs; removing zero rows is reported, not an error, so the
// admin always lands back on the participant list.
func (h *ParticipantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	participantID := r.PathValue("participantID")
	if eventID == "" || participantID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "event id and participant id are required")
		return
	}

	removed, err := h.store.DeleteParticipant(r.Context(), eventID, participantID)
	if err != nil {
		slog.Error("failed to delete participant", "error", err,
			"event_id", eventID, "participant_id", participantID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	message := "Participant removed successfully."
	if removed == 0 {
		message = "Participant not found."
	}

	slog.Info("participant delete", "event_id", eventID,
		"participant_id", participantID, "removed", removed)

	middleware.JSONResponse(w, http.StatusOK, models.DeleteParticipantResponse{
		Removed: removed,
		Message: message,
	})
}
