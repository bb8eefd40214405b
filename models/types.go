// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Domain types

type Event struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Date              string    `json:"date"`
	RegistrationToken string    `json:"-"` // Never expose in public responses
	CreatedAt         time.Time `json:"created_at"`
}

type Participant struct {
	ID           string    `json:"id"`
	EventID      string    `json:"event_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	College      string    `json:"college"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Request types

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type RegisterRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	College string `json:"college"`
}

// Response types

type LoginResponse struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type SessionStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	Username      string `json:"username,omitempty"`
}

type CreateEventResponse struct {
	Event           Event  `json:"event"`
	RegistrationURL string `json:"registration_url"`
}

type EventSummary struct {
	Event            Event  `json:"event"`
	ParticipantCount int    `json:"participant_count"`
	RegistrationURL  string `json:"registration_url"`
}

type DashboardResponse struct {
	Events []EventSummary `json:"events"`
}

// EventPublic is the slice of an event shown on the registration page.
// The token the caller used is the only capability they hold; internal
// IDs stay private.
type EventPublic struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type RegisterResponse struct {
	EventName       string `json:"event_name"`
	ParticipantName string `json:"participant_name"`
	Message         string `json:"message"`
}

type ParticipantListResponse struct {
	Event            Event         `json:"event"`
	Participants     []Participant `json:"participants"`
	ParticipantCount int           `json:"participant_count"`
	SearchQuery      string        `json:"search_query,omitempty"`
	RegistrationURL  string        `json:"registration_url"`
}

type DeleteParticipantResponse struct {
	Removed int64  `json:"removed"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
