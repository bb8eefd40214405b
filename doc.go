// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Eventlink API server.

Eventlink is an event registration service: an administrator creates events
and receives a shareable token-based link; participants use that link to
register themselves without an account.

# Starting the Server

Everything has a development default, so a bare run works:

	go run .

Production settings come from the environment (a .env file is honored):

	PORT=8080 DATABASE_TYPE=postgres DATABASE_URL=postgres://... \
	ADMIN_USERNAME=... ADMIN_PASSWORD=... SESSION_SECRET=... go run .

# Configuration

  - PORT (-p): listen port (default 5000)
  - DATABASE_URL (-d): SQLite path or postgres connection string (default events.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default sqlite)
  - BASE_URL (-base-url): external base URL used in registration links
  - ADMIN_USERNAME / ADMIN_PASSWORD: the single static admin identity
  - SESSION_SECRET (-session-secret): HMAC secret for session cookies
  - DEBUG (-debug): debug-level logging

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, events, registration, participants)
  - router: route definitions using Go 1.22+ routing
  - middleware: logging, CORS, recovery, JSON helpers, session guard
  - models: domain and request/response types
  - auth: registration tokens, IDs, credentials, sessions
  - store: persistence over the events and participants tables
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
