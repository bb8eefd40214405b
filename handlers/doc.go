// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Eventlink API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - AuthHandler: admin login, logout, session status
  - EventHandler: dashboard, event creation and deletion
  - RegistrationHandler: the public token-based registration flow
  - ParticipantHandler: participant listing, search, and removal

Handlers are created via constructor functions that accept *store.Store and
Config:

	eventHandler := handlers.NewEventHandler(st, cfg)

# Admin Flow

Admin routes sit behind the session cookie guard:

	POST /login           → Login (sets session cookie)
	GET  /logout          → Logout (clears it)
	GET  /dashboard       → Dashboard (events + counts + registration URLs)
	POST /events/create   → CreateEvent
	POST /events/{eventID}/delete → DeleteEvent (cascades to participants)
	GET  /events/{eventID}/participants → List (?search= filter)
	POST /events/{eventID}/participants/{participantID}/delete → Delete

# Public Registration Flow

Participants never authenticate; the event's registration token in the URL
is the capability:

	GET  /register/{token} → ShowEvent (event display info)
	POST /register/{token} → Register (name, email, college)
	GET  /success          → Success (display-only confirmation)

Register validates fields in a fixed order (name, email shape, duplicate
email, college) so the first violation determines the user-facing error.
Duplicates detected by the insert-time constraint produce the same response
as the pre-check.

All request bodies are accepted as JSON or as urlencoded form fields.
*/
package handlers
