// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"eventlink/cliparse"
	"eventlink/middleware"
	"eventlink/models"
	"eventlink/store"
)

// invalidLinkMessage is identical whether the token never existed or
// belonged to a since-deleted event, so probing leaks nothing.
const invalidLinkMessage = "Invalid or expired registration link."

type RegistrationHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewRegistrationHandler(st *store.Store, cfg cliparse.Config) *RegistrationHandler {
	return &RegistrationHandler{store: st, cfg: cfg}
}

// ShowEvent handles GET /register/{token}
// Public: resolves the capability token to the event's display info.
func (h *RegistrationHandler) ShowEvent(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	evt, err := h.store.GetEventByToken(r.Context(), token)
	if errors.Is(err, store.ErrEventNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, invalidLinkMessage)
		return
	}
	if err != nil {
		slog.Error("failed to resolve registration token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.EventPublic{
		Name:        evt.Name,
		Description: evt.Description,
		Date:        evt.Date,
	})
}

// Register handles POST /register/{token}
// Public self-registration. Fields are validated in a fixed order so the
// first violation determines the error the user sees:
// name, email format, duplicate email, college.
func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	evt, err := h.store.GetEventByToken(r.Context(), token)
	if errors.Is(err, store.ErrEventNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, invalidLinkMessage)
		return
	}
	if err != nil {
		slog.Error("failed to resolve registration token", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.RegisterRequest
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
		req.Email = r.FormValue("email")
		req.College = r.FormValue("college")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = store.NormalizeEmail(req.Email)
	req.College = strings.TrimSpace(req.College)

	if utf8.RuneCountInString(req.Name) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Name must be at least 2 characters.")
		return
	}

	if req.Email == "" || !models.IsValidEmail(req.Email) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter a valid email address.")
		return
	}

	// Pre-check so a duplicate is reported before the college field is
	// validated. The authoritative check is the constrained insert below.
	exists, err := h.store.ParticipantExists(r.Context(), evt.ID, req.Email)
	if err != nil {
		slog.Error("failed to check existing registration", "error", err, "event_id", evt.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed. Please try again.")
		return
	}
	if exists {
		middleware.ErrorResponse(w, http.StatusConflict, "This email is already registered for this event.")
		return
	}

	if utf8.RuneCountInString(req.College) < 2 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "College/Organization must be at least 2 characters.")
		return
	}

	participant, err := h.store.CreateParticipant(r.Context(), evt.ID, req.Name, req.Email, req.College)
	if errors.Is(err, store.ErrDuplicateParticipant) {
		// Lost a race with an identical registration; same outcome as the
		// pre-check.
		middleware.ErrorResponse(w, http.StatusConflict, "This email is already registered for this event.")
		return
	}
	if err != nil {
		slog.Error("failed to register participant", "error", err, "event_id", evt.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Registration failed. Please try again.")
		return
	}

	slog.Info("participant registered", "event_id", evt.ID, "participant_id", participant.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterResponse{
		EventName:       evt.Name,
		ParticipantName: participant.Name,
		Message:         "Registration successful.",
	})
}

// Success handles GET /success
// Display-only confirmation; the query parameters are not authoritative
// state, just round-tripped for the confirmation page.
func (h *RegistrationHandler) Success(w http.ResponseWriter, r *http.Request) {
	eventName := r.URL.Query().Get("event_name")
	if eventName == "" {
		eventName = "the event"
	}
	participantName := r.URL.Query().Get("participant_name")
	if participantName == "" {
		participantName = "Participant"
	}

	middleware.JSONResponse(w, http.StatusOK, models.RegisterResponse{
		EventName:       eventName,
		ParticipantName: participantName,
		Message:         "Registration successful.",
	})
}
