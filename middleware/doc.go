// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers: request
logging with request IDs, JSON response helpers, CORS, panic recovery, and
the admin session guard.

# Session Guard

Admin routes are composed with RequireAdmin rather than checking auth
inside each handler:

	mux.HandleFunc("GET /dashboard",
		middleware.WithLogging(middleware.RequireAdmin(cfg, h.Dashboard)))

A missing or invalid session cookie produces a uniform 401. Valid sessions
are parsed into an auth.Session and threaded through the request context
(SessionFrom), never stored in a global.

# Response Helpers

JSONResponse and ErrorResponse write the models.ErrorResponse envelope;
handlers never write raw bodies.
*/
package middleware
