// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"eventlink/cliparse"
	"eventlink/middleware"
	"eventlink/models"
	"eventlink/store"
)

type EventHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewEventHandler(st *store.Store, cfg cliparse.Config) *EventHandler {
	return &EventHandler{store: st, cfg: cfg}
}

// Dashboard handles GET /dashboard
// Lists all events newest-first, each with its participant count and live
// registration URL.
func (h *EventHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	events, err := h.store.ListEvents(r.Context())
	if err != nil {
		slog.Error("failed to list events", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	summaries := []models.EventSummary{}
	for _, evt := range events {
		count, err := h.store.CountParticipants(r.Context(), evt.ID)
		if err != nil {
			slog.Error("failed to count participants", "error", err, "event_id", evt.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		summaries = append(summaries, models.EventSummary{
			Event:            evt,
			ParticipantCount: count,
			RegistrationURL:  registrationURL(h.cfg, evt.RegistrationToken),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.DashboardResponse{Events: summaries})
}

// CreateEvent handles POST /events/create
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateEventRequest
	if isJSON(r) {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
			return
		}
		req.Name = r.FormValue("name")
		req.Description = r.FormValue("description")
		req.Date = r.FormValue("date")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Date = strings.TrimSpace(req.Date)

	// Validate input
	if utf8.RuneCountInString(req.Name) < 3 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Event name must be at least 3 characters.")
		return
	}
	if req.Date == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please select an event date.")
		return
	}

	evt, err := h.store.CreateEvent(r.Context(), req.Name, req.Description, req.Date)
	if err != nil {
		slog.Error("failed to create event", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create event. Please try again.")
		return
	}

	sess, _ := middleware.SessionFrom(r.Context())
	slog.Info("event created", "event_id", evt.ID, "name", evt.Name, "admin", sess.Subject)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateEventResponse{
		Event:           evt,
		RegistrationURL: registrationURL(h.cfg, evt.RegistrationToken),
	})
}

// DeleteEvent handles POST /events/{eventID}/delete
// Fetch-or-404, then a cascading transactional delete of the event and all
// of its participants.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
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

	if err := h.store.DeleteEvent(r.Context(), eventID); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Event not found.")
			return
		}
		slog.Error("failed to delete event", "error", err, "event_id", eventID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	slog.Info("event deleted", "event_id", eventID, "name", evt.Name)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Event %q deleted successfully.", evt.Name),
	})
}
