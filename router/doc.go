// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes using Go 1.22+ method-and-pattern
routing on the standard ServeMux.

Routes split into three groups:

  - authentication: /login, /logout
  - admin (composed with middleware.RequireAdmin): /dashboard, /events/...
  - public: /register/{token}, /success, /health

The admin guard is applied at route registration, not inside handlers, so
every admin endpoint fails uniformly with 401 when the session is missing.
*/
package router
