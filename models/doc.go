// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and request/response shapes for the
Eventlink API.

# Domain Types

  - Event: an admin-created event. RegistrationToken is the opaque capability
    string embedded in public registration links and is never serialized in
    public responses.
  - Participant: a self-registered attendee, owned by exactly one Event.
    Emails are stored lowercased and are unique per event.

# Request/Response Types

Handlers decode JSON bodies into the *Request types and encode *Response
types back. ErrorResponse is the uniform error envelope:

	{"error": "Conflict", "message": "This email is already registered for this event."}

# Validation

The shared validator instance backs email-shape checks:

	if !models.IsValidEmail(req.Email) { ... }

Field length rules live in the handlers because their check order determines
which error message the user sees first.
*/
package models
